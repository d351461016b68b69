package dense

import "fmt"

// storage is the shared row-major contiguous buffer underneath Array and
// Matrix. It owns its data; everything else in this package references it.
type storage[T Scalar] struct {
	rows, cols int
	data       []T
}

func newStorage[T Scalar](rows, cols int) storage[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("dense: invalid dimensions %dx%d (must be positive)", rows, cols))
	}
	return storage[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Rows returns the number of rows.
func (s *storage[T]) Rows() int {
	return s.rows
}

// Cols returns the number of columns.
func (s *storage[T]) Cols() int {
	return s.cols
}

// Size returns the total number of coefficients.
func (s *storage[T]) Size() int {
	return s.rows * s.cols
}

// At returns the coefficient at row i, column j.
// Panics if i or j are out of bounds.
func (s *storage[T]) At(i, j int) T {
	return s.data[s.offset(i, j)]
}

// Set stores v at row i, column j.
// Panics if i or j are out of bounds.
func (s *storage[T]) Set(i, j int, v T) {
	s.data[s.offset(i, j)] = v
}

// Data returns the underlying row-major slice.
// The slice directly accesses the buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the container.
func (s *storage[T]) Data() []T {
	return s.data
}

func (s *storage[T]) offset(i, j int) int {
	if i < 0 || i >= s.rows {
		panic(fmt.Sprintf("dense: row index %d out of bounds (rows %d)", i, s.rows))
	}
	if j < 0 || j >= s.cols {
		panic(fmt.Sprintf("dense: column index %d out of bounds (cols %d)", j, s.cols))
	}
	return i*s.cols + j
}

func (s *storage[T]) clone() storage[T] {
	c := storage[T]{
		rows: s.rows,
		cols: s.cols,
		data: make([]T, len(s.data)),
	}
	copy(c.data, s.data)
	return c
}

// sameShape reports whether a and b have identical dimensions.
func sameShape[T Scalar](a, b Expr[T]) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// checkSameShape panics when a and b have different dimensions. The panic
// fires before any coefficient is read or written, so a mismatched
// operation never leaves a partial result behind.
func checkSameShape[T Scalar](op string, a, b Expr[T]) {
	if !sameShape(a, b) {
		panic(fmt.Sprintf("dense: %s: shape mismatch %dx%d vs %dx%d",
			op, a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
}
