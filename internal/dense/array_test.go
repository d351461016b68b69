package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray(t *testing.T) {
	a := NewArray[float64](3, 4)

	assert.Equal(t, 3, a.Rows())
	assert.Equal(t, 4, a.Cols())
	assert.Equal(t, 12, a.Size())
	for _, v := range a.Data() {
		assert.Zero(t, v)
	}
}

func TestNewArrayInvalidDims(t *testing.T) {
	assert.Panics(t, func() { NewArray[float64](0, 3) })
	assert.Panics(t, func() { NewArray[float64](3, -1) })
}

func TestArrayFromSlice(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 3, a.Cols())
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 6.0, a.At(1, 2))
}

func TestArrayFromSliceLengthMismatch(t *testing.T) {
	_, err := ArrayFromSlice([]float64{1, 2, 3}, 2, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires 4 elements")
}

func TestArrayFromSliceInvalidDims(t *testing.T) {
	_, err := ArrayFromSlice([]float64{}, 0, 0)
	require.Error(t, err)
}

func TestArrayFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	a, err := ArrayFromSlice(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, a.At(0, 0), "container must own its buffer")
}

func TestArraySetAt(t *testing.T) {
	a := NewArray[int32](2, 2)
	a.Set(1, 0, 7)

	assert.Equal(t, int32(7), a.At(1, 0))
	assert.Equal(t, int32(0), a.At(0, 1))
}

func TestArrayIndexOutOfBounds(t *testing.T) {
	a := NewArray[float64](2, 2)

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0, -1) })
	assert.Panics(t, func() { a.Set(-1, 0, 1) })
	assert.Panics(t, func() { a.Set(0, 2, 1) })
}

func TestArrayDataZeroCopy(t *testing.T) {
	a := NewArray[float64](2, 2)
	a.Data()[3] = 5

	assert.Equal(t, 5.0, a.At(1, 1))
}

func TestArrayClone(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	b := a.Clone()
	b.Set(0, 0, 42)

	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 42.0, b.At(0, 0))
}

func TestArrayString(t *testing.T) {
	a := NewArray[float64](2, 3)
	assert.Equal(t, "Array[float64]2x3", a.String())

	m := NewMatrix[int32](4, 4)
	assert.Equal(t, "Matrix[int32]4x4", m.String())
}

func TestArrayAssignFromArray(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b := NewArray[float64](2, 2)

	b.Assign(a)

	assert.Equal(t, a.Data(), b.Data())

	// Direct copy, not a shared buffer.
	a.Set(0, 0, 99)
	assert.Equal(t, 1.0, b.At(0, 0))
}

func TestArrayAssignSelfIsNoop(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	a.Assign(a)

	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestArrayAssignShapeMismatch(t *testing.T) {
	a := NewArray[float64](2, 2)
	b := NewArray[float64](3, 3)

	assert.Panics(t, func() { a.Assign(b) })
	assert.Panics(t, func() { a.Assign(b.Expr()) })
}

func TestArrayScalarCompoundAssign(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	a.AddScalarAssign(10)
	assert.Equal(t, []float64{11, 12, 13, 14}, a.Data())

	a.SubScalarAssign(1)
	assert.Equal(t, []float64{10, 11, 12, 13}, a.Data())
}

func TestMatrixFromSlice(t *testing.T) {
	m, err := MatrixFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.At(0, 1))

	_, err = MatrixFromSlice([]float64{1, 2}, 2, 2)
	require.Error(t, err)
}

func TestMatrixAssignAndCompound(t *testing.T) {
	m, err := MatrixFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	n, err := MatrixFromSlice([]float64{10, 20, 30, 40}, 2, 2)
	require.NoError(t, err)

	m.AddAssign(n)
	assert.Equal(t, []float64{11, 22, 33, 44}, m.Data())

	m.SubAssign(n)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	m.MulScalarAssign(3)
	assert.Equal(t, []float64{3, 6, 9, 12}, m.Data())
}
