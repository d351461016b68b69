package dense

// ArrayExpr is the elementwise capability wrapper. It wraps any coefficient
// source and carries the full coefficient-wise operator vocabulary; every
// operator returns a new lazy wrapper, so calls chain into an expression
// tree without computing anything.
//
// ArrayExpr itself satisfies Expr, so a wrapped expression can stand
// anywhere a plain operand can.
type ArrayExpr[T Scalar] struct {
	node Expr[T]
}

// NewArrayExpr wraps an arbitrary coefficient source with the elementwise
// capability.
func NewArrayExpr[T Scalar](node Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: nodeOf(node)}
}

// Rows returns the number of rows.
func (e ArrayExpr[T]) Rows() int { return e.node.Rows() }

// Cols returns the number of columns.
func (e ArrayExpr[T]) Cols() int { return e.node.Cols() }

// Size returns the total number of coefficients.
func (e ArrayExpr[T]) Size() int { return e.node.Size() }

// At computes the coefficient at row i, column j by pulling through the
// expression tree.
func (e ArrayExpr[T]) At(i, j int) T { return e.node.At(i, j) }

// Add returns the lazy coefficient-wise sum of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) Add(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("add", e.node, other, add[T])}
}

// Sub returns the lazy coefficient-wise difference of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) Sub(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("sub", e.node, other, sub[T])}
}

// Mul returns the lazy coefficient-wise product of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) Mul(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("mul", e.node, other, mul[T])}
}

// Div returns the lazy coefficient-wise quotient of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) Div(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("div", e.node, other, div[T])}
}

// AddScalar returns the lazy expression e + s, with s broadcast to every
// coefficient.
func (e ArrayExpr[T]) AddScalar(s T) ArrayExpr[T] {
	return e.Add(broadcast(e.node, s))
}

// SubScalar returns the lazy expression e - s, with s broadcast to every
// coefficient.
func (e ArrayExpr[T]) SubScalar(s T) ArrayExpr[T] {
	return e.Sub(broadcast(e.node, s))
}

// MulScalar returns the lazy expression e * s, with s broadcast to every
// coefficient.
func (e ArrayExpr[T]) MulScalar(s T) ArrayExpr[T] {
	return e.Mul(broadcast(e.node, s))
}

// DivScalar returns the lazy expression e / s, with s broadcast to every
// coefficient.
func (e ArrayExpr[T]) DivScalar(s T) ArrayExpr[T] {
	return e.Div(broadcast(e.node, s))
}

// CwiseMin returns the lazy coefficient-wise minimum of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) CwiseMin(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("cwiseMin", e.node, other, minOf[T])}
}

// CwiseMax returns the lazy coefficient-wise maximum of e and other.
// Panics if the shapes differ.
func (e ArrayExpr[T]) CwiseMax(other Expr[T]) ArrayExpr[T] {
	return ArrayExpr[T]{node: newBinary("cwiseMax", e.node, other, maxOf[T])}
}

// Neg returns the lazy coefficient-wise negation of e.
func (e ArrayExpr[T]) Neg() ArrayExpr[T] { return e.Map(negOf[T]) }

// Abs returns the lazy coefficient-wise absolute value of e.
func (e ArrayExpr[T]) Abs() ArrayExpr[T] { return e.Map(absOf[T]) }

// Square returns the lazy coefficient-wise square of e.
func (e ArrayExpr[T]) Square() ArrayExpr[T] { return e.Map(squareOf[T]) }

// Sqrt returns the lazy coefficient-wise square root of e.
func (e ArrayExpr[T]) Sqrt() ArrayExpr[T] { return e.Map(sqrtOf[T]) }

// Exp returns the lazy coefficient-wise exponential of e.
func (e ArrayExpr[T]) Exp() ArrayExpr[T] { return e.Map(expOf[T]) }

// Log returns the lazy coefficient-wise natural logarithm of e.
func (e ArrayExpr[T]) Log() ArrayExpr[T] { return e.Map(logOf[T]) }

// Inverse returns the lazy coefficient-wise reciprocal of e.
func (e ArrayExpr[T]) Inverse() ArrayExpr[T] { return e.Map(inverseOf[T]) }

// Map returns a lazy expression applying f to every coefficient of e.
func (e ArrayExpr[T]) Map(f func(T) T) ArrayExpr[T] {
	return ArrayExpr[T]{node: newUnary(e.node, f)}
}

// Eval materializes the expression into a fresh Array.
func (e ArrayExpr[T]) Eval() *Array[T] {
	dst := NewArray[T](e.Rows(), e.Cols())
	assignTo[T](dst, e.node)
	return dst
}

// Matrix reinterprets the expression with the algebraic capability. The
// returned wrapper shares the identical coefficient source; no data moves.
func (e ArrayExpr[T]) Matrix() MatrixExpr[T] {
	return MatrixExpr[T]{node: e.node}
}

// MatrixExpr is the algebraic capability wrapper. Coefficient-wise products
// and quotients are deliberately absent from this surface; reach them
// through Array().
type MatrixExpr[T Scalar] struct {
	node Expr[T]
}

// NewMatrixExpr wraps an arbitrary coefficient source with the algebraic
// capability.
func NewMatrixExpr[T Scalar](node Expr[T]) MatrixExpr[T] {
	return MatrixExpr[T]{node: nodeOf(node)}
}

// Rows returns the number of rows.
func (e MatrixExpr[T]) Rows() int { return e.node.Rows() }

// Cols returns the number of columns.
func (e MatrixExpr[T]) Cols() int { return e.node.Cols() }

// Size returns the total number of coefficients.
func (e MatrixExpr[T]) Size() int { return e.node.Size() }

// At computes the coefficient at row i, column j.
func (e MatrixExpr[T]) At(i, j int) T { return e.node.At(i, j) }

// Add returns the lazy matrix sum of e and other.
// Panics if the shapes differ.
func (e MatrixExpr[T]) Add(other Expr[T]) MatrixExpr[T] {
	return MatrixExpr[T]{node: newBinary("add", e.node, other, add[T])}
}

// Sub returns the lazy matrix difference of e and other.
// Panics if the shapes differ.
func (e MatrixExpr[T]) Sub(other Expr[T]) MatrixExpr[T] {
	return MatrixExpr[T]{node: newBinary("sub", e.node, other, sub[T])}
}

// MulScalar returns the lazy scalar multiple e * s.
func (e MatrixExpr[T]) MulScalar(s T) MatrixExpr[T] {
	return MatrixExpr[T]{node: newBinary("mulScalar", e.node, broadcast(e.node, s), mul[T])}
}

// DivScalar returns the lazy scalar quotient e / s.
func (e MatrixExpr[T]) DivScalar(s T) MatrixExpr[T] {
	return MatrixExpr[T]{node: newBinary("divScalar", e.node, broadcast(e.node, s), div[T])}
}

// Neg returns the lazy negation of e.
func (e MatrixExpr[T]) Neg() MatrixExpr[T] {
	return MatrixExpr[T]{node: newUnary(e.node, negOf[T])}
}

// Transpose returns a zero-copy transposed view of e.
func (e MatrixExpr[T]) Transpose() MatrixExpr[T] {
	return MatrixExpr[T]{node: transposeNode[T]{src: e.node}}
}

// Trace returns the sum of the diagonal coefficients.
// Panics if e is not square.
func (e MatrixExpr[T]) Trace() T {
	if e.Rows() != e.Cols() {
		panic("dense: trace requires a square matrix")
	}
	var sum T
	for i := 0; i < e.Rows(); i++ {
		sum += e.At(i, i)
	}
	return sum
}

// Eval materializes the expression into a fresh Matrix.
func (e MatrixExpr[T]) Eval() *Matrix[T] {
	dst := NewMatrix[T](e.Rows(), e.Cols())
	assignTo[T](dst, e.node)
	return dst
}

// Array reinterprets the expression with the elementwise capability over
// the identical coefficient source.
func (e MatrixExpr[T]) Array() ArrayExpr[T] {
	return ArrayExpr[T]{node: e.node}
}
