package dense

// Mutable view duality wrappers. A view rebinds a concrete container (or
// another mutable view - nodeOf/mutableOf collapse the layers) to the
// opposite capability without touching the data: there is exactly one
// logical storage location no matter how many views are stacked, and
// writes through any of them land in the same buffer. Round-tripping
// (m.Array().Matrix()) yields a view observationally identical to the
// original at every coefficient.
//
// Like expression nodes, views are ephemeral single-statement values.

// MatrixView is a zero-copy mutable reinterpretation of array-capability
// storage as a matrix.
type MatrixView[T Scalar] struct {
	ref MutableExpr[T]
}

// Rows returns the number of rows.
func (v MatrixView[T]) Rows() int { return v.ref.Rows() }

// Cols returns the number of columns.
func (v MatrixView[T]) Cols() int { return v.ref.Cols() }

// Size returns the total number of coefficients.
func (v MatrixView[T]) Size() int { return v.ref.Size() }

// At returns the coefficient at row i, column j of the shared storage.
func (v MatrixView[T]) At(i, j int) T { return v.ref.At(i, j) }

// Set writes v into the shared storage at row i, column j.
func (v MatrixView[T]) Set(i, j int, x T) { v.ref.Set(i, j, x) }

// Expr wraps the view with the algebraic capability.
func (v MatrixView[T]) Expr() MatrixExpr[T] { return MatrixExpr[T]{node: v.ref} }

// Add returns the lazy matrix sum of v and other.
func (v MatrixView[T]) Add(other Expr[T]) MatrixExpr[T] { return v.Expr().Add(other) }

// Sub returns the lazy matrix difference of v and other.
func (v MatrixView[T]) Sub(other Expr[T]) MatrixExpr[T] { return v.Expr().Sub(other) }

// MulScalar returns the lazy scalar multiple v * s.
func (v MatrixView[T]) MulScalar(s T) MatrixExpr[T] { return v.Expr().MulScalar(s) }

// Transpose returns a zero-copy transposed view of v.
func (v MatrixView[T]) Transpose() MatrixExpr[T] { return v.Expr().Transpose() }

// Trace returns the sum of the diagonal coefficients.
// Panics if v is not square.
func (v MatrixView[T]) Trace() T { return v.Expr().Trace() }

// Assign materializes src through the view into the shared storage.
// Panics if the shapes differ.
func (v MatrixView[T]) Assign(src Expr[T]) MatrixView[T] {
	assignTo[T](v.ref, src)
	return v
}

// AddAssign replaces the shared storage by itself + other, in place.
// Panics if the shapes differ.
func (v MatrixView[T]) AddAssign(other Expr[T]) MatrixView[T] {
	selfUpdate[T]{dst: v.ref, op: add[T]}.apply("addAssign", other)
	return v
}

// SubAssign replaces the shared storage by itself - other, in place.
// Panics if the shapes differ.
func (v MatrixView[T]) SubAssign(other Expr[T]) MatrixView[T] {
	selfUpdate[T]{dst: v.ref, op: sub[T]}.apply("subAssign", other)
	return v
}

// Array flips the view back to the elementwise capability over the same
// storage.
func (v MatrixView[T]) Array() ArrayView[T] { return ArrayView[T]{ref: v.ref} }

// ArrayView is a zero-copy mutable reinterpretation of matrix-capability
// storage as an elementwise array.
type ArrayView[T Scalar] struct {
	ref MutableExpr[T]
}

// Rows returns the number of rows.
func (v ArrayView[T]) Rows() int { return v.ref.Rows() }

// Cols returns the number of columns.
func (v ArrayView[T]) Cols() int { return v.ref.Cols() }

// Size returns the total number of coefficients.
func (v ArrayView[T]) Size() int { return v.ref.Size() }

// At returns the coefficient at row i, column j of the shared storage.
func (v ArrayView[T]) At(i, j int) T { return v.ref.At(i, j) }

// Set writes v into the shared storage at row i, column j.
func (v ArrayView[T]) Set(i, j int, x T) { v.ref.Set(i, j, x) }

// Expr wraps the view with the elementwise capability.
func (v ArrayView[T]) Expr() ArrayExpr[T] { return ArrayExpr[T]{node: v.ref} }

// Add returns the lazy coefficient-wise sum of v and other.
func (v ArrayView[T]) Add(other Expr[T]) ArrayExpr[T] { return v.Expr().Add(other) }

// Sub returns the lazy coefficient-wise difference of v and other.
func (v ArrayView[T]) Sub(other Expr[T]) ArrayExpr[T] { return v.Expr().Sub(other) }

// Mul returns the lazy coefficient-wise product of v and other.
func (v ArrayView[T]) Mul(other Expr[T]) ArrayExpr[T] { return v.Expr().Mul(other) }

// Div returns the lazy coefficient-wise quotient of v and other.
func (v ArrayView[T]) Div(other Expr[T]) ArrayExpr[T] { return v.Expr().Div(other) }

// AddScalar returns the lazy expression v + s.
func (v ArrayView[T]) AddScalar(s T) ArrayExpr[T] { return v.Expr().AddScalar(s) }

// MulScalar returns the lazy expression v * s.
func (v ArrayView[T]) MulScalar(s T) ArrayExpr[T] { return v.Expr().MulScalar(s) }

// Assign materializes src through the view into the shared storage.
// Panics if the shapes differ.
func (v ArrayView[T]) Assign(src Expr[T]) ArrayView[T] {
	assignTo[T](v.ref, src)
	return v
}

// AddAssign replaces the shared storage by itself + other, in place.
// Panics if the shapes differ.
func (v ArrayView[T]) AddAssign(other Expr[T]) ArrayView[T] {
	selfUpdate[T]{dst: v.ref, op: add[T]}.apply("addAssign", other)
	return v
}

// SubAssign replaces the shared storage by itself - other, in place.
// Panics if the shapes differ.
func (v ArrayView[T]) SubAssign(other Expr[T]) ArrayView[T] {
	selfUpdate[T]{dst: v.ref, op: sub[T]}.apply("subAssign", other)
	return v
}

// MulAssign replaces the shared storage by its coefficient-wise product
// with other, in place.
// Panics if the shapes differ.
func (v ArrayView[T]) MulAssign(other Expr[T]) ArrayView[T] {
	selfUpdate[T]{dst: v.ref, op: mul[T]}.apply("mulAssign", other)
	return v
}

// DivAssign replaces the shared storage by its coefficient-wise quotient
// with other, in place.
// Panics if the shapes differ.
func (v ArrayView[T]) DivAssign(other Expr[T]) ArrayView[T] {
	selfUpdate[T]{dst: v.ref, op: div[T]}.apply("divAssign", other)
	return v
}

// Matrix flips the view back to the algebraic capability over the same
// storage.
func (v ArrayView[T]) Matrix() MatrixView[T] { return MatrixView[T]{ref: v.ref} }
