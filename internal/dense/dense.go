// Package dense provides the coefficient-wise expression core: dense array
// and matrix containers plus the lazy expression layer built over them.
//
// Arithmetic on containers and expressions never computes coefficients
// eagerly. Each operator builds a small expression node; coefficients are
// pulled on demand when the expression is materialized into concrete
// storage (Assign, Eval) or reduced (Sum, MaxCoeff, ...).
//
// Expressions, in-place update targets, and views are ephemeral values:
// build them, evaluate them, and let them go within a single statement.
// They hold non-owning references to the containers they were built from,
// so retaining one past the lifetime of an operand is a caller error that
// the package does not detect.
package dense

// Scalar is a constraint for supported coefficient types.
type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Expr is the read contract shared by containers, views, and every lazy
// expression node. Coefficients are addressed by (row, column); evaluation
// of At must be pure with respect to the expression itself (two reads of
// the same position return the same value unless underlying storage was
// mutated in between).
type Expr[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Size returns the total number of coefficients (Rows * Cols).
	Size() int

	// At returns the coefficient at row i, column j.
	// Panics if i or j are out of bounds.
	At(i, j int) T
}

// MutableExpr is the write contract required of in-place update and
// assignment destinations. Only concrete containers and mutable views over
// them satisfy it; lazy nodes never do.
type MutableExpr[T Scalar] interface {
	Expr[T]

	// Set stores v at row i, column j.
	// Panics if i or j are out of bounds.
	Set(i, j int, v T)
}

// nodeOf unwraps capability wrappers and mutable views down to the
// underlying coefficient source, so that composing wrapped expressions
// does not stack forwarding layers.
func nodeOf[T Scalar](x Expr[T]) Expr[T] {
	switch v := x.(type) {
	case ArrayExpr[T]:
		return v.node
	case MatrixExpr[T]:
		return v.node
	case ArrayView[T]:
		return v.ref
	case MatrixView[T]:
		return v.ref
	}
	return x
}

// mutableOf is the write-side counterpart of nodeOf.
func mutableOf[T Scalar](x MutableExpr[T]) MutableExpr[T] {
	switch v := x.(type) {
	case ArrayView[T]:
		return v.ref
	case MatrixView[T]:
		return v.ref
	}
	return x
}
