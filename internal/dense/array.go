package dense

import "fmt"

// Array is a dense 2D container with elementwise semantics. It owns a
// contiguous row-major buffer; expressions built over it hold non-owning
// references, so the Array must outlive every expression derived from it.
//
// Example:
//
//	a, _ := dense.ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	b := dense.Ones[float64](2, 2)
//	c := a.Add(b).MulScalar(2).Eval() // one pass, no intermediates
type Array[T Scalar] struct {
	storage[T]
}

// NewArray creates a zero-initialized rows x cols array.
// Panics if rows or cols is not positive.
func NewArray[T Scalar](rows, cols int) *Array[T] {
	return &Array[T]{storage: newStorage[T](rows, cols)}
}

// ArrayFromSlice creates an array from row-major data.
// The slice is copied into the array's buffer.
func ArrayFromSlice[T Scalar](data []T, rows, cols int) (*Array[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dense: invalid dimensions %dx%d (must be positive)", rows, cols)
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("dense: %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	a := NewArray[T](rows, cols)
	copy(a.data, data)
	return a, nil
}

// Expr wraps the array with the elementwise capability. The wrapper holds
// a non-owning reference to the array's storage.
func (a *Array[T]) Expr() ArrayExpr[T] {
	return ArrayExpr[T]{node: a}
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{storage: a.storage.clone()}
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%T]%dx%d", *new(T), a.rows, a.cols)
}

// Assign materializes src into this array's storage: one pass in row-major
// order, each coefficient written directly into the buffer. When src is
// another concrete array the buffer is copied directly.
// Panics if the shapes differ.
func (a *Array[T]) Assign(src Expr[T]) *Array[T] {
	switch s := nodeOf(src).(type) {
	case *Array[T]:
		checkSameShape[T]("assign", a, s)
		if s != a {
			copy(a.data, s.data)
		}
	case *Matrix[T]:
		checkSameShape[T]("assign", a, s)
		copy(a.data, s.data)
	default:
		assignTo[T](a, s)
	}
	return a
}

// Lazy arithmetic. Each method forwards to the elementwise capability
// wrapper; nothing is computed until the result is materialized.

// Add returns the lazy coefficient-wise sum of a and other.
func (a *Array[T]) Add(other Expr[T]) ArrayExpr[T] { return a.Expr().Add(other) }

// Sub returns the lazy coefficient-wise difference of a and other.
func (a *Array[T]) Sub(other Expr[T]) ArrayExpr[T] { return a.Expr().Sub(other) }

// Mul returns the lazy coefficient-wise product of a and other.
func (a *Array[T]) Mul(other Expr[T]) ArrayExpr[T] { return a.Expr().Mul(other) }

// Div returns the lazy coefficient-wise quotient of a and other.
func (a *Array[T]) Div(other Expr[T]) ArrayExpr[T] { return a.Expr().Div(other) }

// AddScalar returns the lazy expression a + s.
func (a *Array[T]) AddScalar(s T) ArrayExpr[T] { return a.Expr().AddScalar(s) }

// SubScalar returns the lazy expression a - s.
func (a *Array[T]) SubScalar(s T) ArrayExpr[T] { return a.Expr().SubScalar(s) }

// MulScalar returns the lazy expression a * s.
func (a *Array[T]) MulScalar(s T) ArrayExpr[T] { return a.Expr().MulScalar(s) }

// DivScalar returns the lazy expression a / s.
func (a *Array[T]) DivScalar(s T) ArrayExpr[T] { return a.Expr().DivScalar(s) }

// Compound assignment. Expression right-hand sides route through an
// in-place update target: the destination is rewritten pointwise in a
// single pass, with no temporary allocated for the full right-hand side.
// See selfUpdate for the aliasing contract.

// AddAssign replaces a by a + other, in place.
// Panics if the shapes differ.
func (a *Array[T]) AddAssign(other Expr[T]) *Array[T] {
	selfUpdate[T]{dst: a, op: add[T]}.apply("addAssign", other)
	return a
}

// SubAssign replaces a by a - other, in place.
// Panics if the shapes differ.
func (a *Array[T]) SubAssign(other Expr[T]) *Array[T] {
	selfUpdate[T]{dst: a, op: sub[T]}.apply("subAssign", other)
	return a
}

// MulAssign replaces a by the coefficient-wise product a * other, in place.
// Panics if the shapes differ.
func (a *Array[T]) MulAssign(other Expr[T]) *Array[T] {
	selfUpdate[T]{dst: a, op: mul[T]}.apply("mulAssign", other)
	return a
}

// DivAssign replaces a by the coefficient-wise quotient a / other, in place.
// Panics if the shapes differ.
func (a *Array[T]) DivAssign(other Expr[T]) *Array[T] {
	selfUpdate[T]{dst: a, op: div[T]}.apply("divAssign", other)
	return a
}

// AddScalarAssign replaces a by a + s. The right-hand side is trivially
// sized, so this is plain eager self-reassignment.
func (a *Array[T]) AddScalarAssign(s T) *Array[T] {
	return a.Assign(a.AddScalar(s))
}

// SubScalarAssign replaces a by a - s.
func (a *Array[T]) SubScalarAssign(s T) *Array[T] {
	return a.Assign(a.SubScalar(s))
}

// Matrix reinterprets the array with the algebraic capability. The view is
// zero-copy and mutable: writes through it hit this array's buffer.
func (a *Array[T]) Matrix() MatrixView[T] {
	return MatrixView[T]{ref: a}
}
