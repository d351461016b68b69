package dense

import "fmt"

// Matrix is a dense 2D container with algebraic semantics. It shares the
// storage layout of Array; the two differ only in the capability surface
// their expressions carry. Coefficient-wise products and quotients are
// reached through Array().
type Matrix[T Scalar] struct {
	storage[T]
}

// NewMatrix creates a zero-initialized rows x cols matrix.
// Panics if rows or cols is not positive.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	return &Matrix[T]{storage: newStorage[T](rows, cols)}
}

// MatrixFromSlice creates a matrix from row-major data.
// The slice is copied into the matrix's buffer.
func MatrixFromSlice[T Scalar](data []T, rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dense: invalid dimensions %dx%d (must be positive)", rows, cols)
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("dense: %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	m := NewMatrix[T](rows, cols)
	copy(m.data, data)
	return m, nil
}

// Expr wraps the matrix with the algebraic capability. The wrapper holds a
// non-owning reference to the matrix's storage.
func (m *Matrix[T]) Expr() MatrixExpr[T] {
	return MatrixExpr[T]{node: m}
}

// Clone creates a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{storage: m.storage.clone()}
}

// String returns a human-readable description of the matrix.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix[%T]%dx%d", *new(T), m.rows, m.cols)
}

// Assign materializes src into this matrix's storage.
// Panics if the shapes differ.
func (m *Matrix[T]) Assign(src Expr[T]) *Matrix[T] {
	switch s := nodeOf(src).(type) {
	case *Matrix[T]:
		checkSameShape[T]("assign", m, s)
		if s != m {
			copy(m.data, s.data)
		}
	case *Array[T]:
		checkSameShape[T]("assign", m, s)
		copy(m.data, s.data)
	default:
		assignTo[T](m, s)
	}
	return m
}

// Add returns the lazy matrix sum of m and other.
func (m *Matrix[T]) Add(other Expr[T]) MatrixExpr[T] { return m.Expr().Add(other) }

// Sub returns the lazy matrix difference of m and other.
func (m *Matrix[T]) Sub(other Expr[T]) MatrixExpr[T] { return m.Expr().Sub(other) }

// MulScalar returns the lazy scalar multiple m * s.
func (m *Matrix[T]) MulScalar(s T) MatrixExpr[T] { return m.Expr().MulScalar(s) }

// DivScalar returns the lazy scalar quotient m / s.
func (m *Matrix[T]) DivScalar(s T) MatrixExpr[T] { return m.Expr().DivScalar(s) }

// Transpose returns a zero-copy transposed view of m.
func (m *Matrix[T]) Transpose() MatrixExpr[T] { return m.Expr().Transpose() }

// Trace returns the sum of the diagonal coefficients.
// Panics if m is not square.
func (m *Matrix[T]) Trace() T { return m.Expr().Trace() }

// AddAssign replaces m by m + other, in place.
// Panics if the shapes differ.
func (m *Matrix[T]) AddAssign(other Expr[T]) *Matrix[T] {
	selfUpdate[T]{dst: m, op: add[T]}.apply("addAssign", other)
	return m
}

// SubAssign replaces m by m - other, in place.
// Panics if the shapes differ.
func (m *Matrix[T]) SubAssign(other Expr[T]) *Matrix[T] {
	selfUpdate[T]{dst: m, op: sub[T]}.apply("subAssign", other)
	return m
}

// MulScalarAssign replaces m by m * s, eagerly.
func (m *Matrix[T]) MulScalarAssign(s T) *Matrix[T] {
	return m.Assign(m.MulScalar(s))
}

// Array reinterprets the matrix with the elementwise capability. The view
// is zero-copy and mutable: writes through it hit this matrix's buffer.
func (m *Matrix[T]) Array() ArrayView[T] {
	return ArrayView[T]{ref: m}
}
