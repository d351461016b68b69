package dense

// Expression nodes. A node carries its operand handles, a per-coefficient
// function, and its shape; nothing is computed at construction. Nodes are
// immutable and compose recursively: any operand may itself be a node, so
// a chained statement builds a tree whose depth matches the chain length.
// No caching or common-subexpression elimination happens anywhere - the
// same sub-handle appearing twice is read twice.

// nullaryNode generates coefficients from position alone. It is the scalar
// broadcast carrier (Constant) and the generic generator (Generate).
type nullaryNode[T Scalar] struct {
	rows, cols int
	gen        func(i, j int) T
}

func (n nullaryNode[T]) Rows() int     { return n.rows }
func (n nullaryNode[T]) Cols() int     { return n.cols }
func (n nullaryNode[T]) Size() int     { return n.rows * n.cols }
func (n nullaryNode[T]) At(i, j int) T { return n.gen(i, j) }

// unaryNode applies op to each coefficient of src.
type unaryNode[T Scalar] struct {
	src Expr[T]
	op  func(T) T
}

func (n unaryNode[T]) Rows() int     { return n.src.Rows() }
func (n unaryNode[T]) Cols() int     { return n.src.Cols() }
func (n unaryNode[T]) Size() int     { return n.src.Size() }
func (n unaryNode[T]) At(i, j int) T { return n.op(n.src.At(i, j)) }

// binaryNode combines matching coefficients of lhs and rhs with op.
// Shapes are validated at construction, never at read time.
type binaryNode[T Scalar] struct {
	lhs, rhs Expr[T]
	op       func(T, T) T
}

func (n binaryNode[T]) Rows() int     { return n.lhs.Rows() }
func (n binaryNode[T]) Cols() int     { return n.lhs.Cols() }
func (n binaryNode[T]) Size() int     { return n.lhs.Size() }
func (n binaryNode[T]) At(i, j int) T { return n.op(n.lhs.At(i, j), n.rhs.At(i, j)) }

func newBinary[T Scalar](op string, lhs, rhs Expr[T], f func(T, T) T) binaryNode[T] {
	l, r := nodeOf(lhs), nodeOf(rhs)
	checkSameShape(op, l, r)
	return binaryNode[T]{lhs: l, rhs: r, op: f}
}

func newUnary[T Scalar](src Expr[T], f func(T) T) unaryNode[T] {
	return unaryNode[T]{src: nodeOf(src), op: f}
}

// transposeNode is a zero-copy index-swapping view: At(i, j) reads the
// underlying expression at (j, i).
type transposeNode[T Scalar] struct {
	src Expr[T]
}

func (n transposeNode[T]) Rows() int     { return n.src.Cols() }
func (n transposeNode[T]) Cols() int     { return n.src.Rows() }
func (n transposeNode[T]) Size() int     { return n.src.Size() }
func (n transposeNode[T]) At(i, j int) T { return n.src.At(j, i) }

// broadcast returns a constant node with the same shape as like, used by
// the scalar-operand operators so that binary composition only ever sees
// equal shapes.
func broadcast[T Scalar](like Expr[T], v T) nullaryNode[T] {
	return nullaryNode[T]{
		rows: like.Rows(),
		cols: like.Cols(),
		gen:  func(int, int) T { return v },
	}
}
