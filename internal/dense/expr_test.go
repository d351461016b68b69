package dense

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestExprLazyConstruction(t *testing.T) {
	reads := 0
	a := Generate(2, 2, func(i, j int) float64 {
		reads++
		return float64(i + j)
	})
	b := NewArray[float64](2, 2)

	expr := a.Add(b).MulScalar(2).Sub(b)
	assert.Zero(t, reads, "building an expression must not pull coefficients")

	expr.Eval()
	assert.Equal(t, 4, reads, "materialization pulls each coefficient exactly once")
}

func TestExprAdd(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := ArrayFromSlice([]float64{5, 6, 7, 8}, 2, 2)
	require.NoError(t, err)

	c := a.Add(b).Eval()

	assert.Equal(t, []float64{6, 8, 10, 12}, c.Data())
}

func TestExprSubDivMul(t *testing.T) {
	a, err := ArrayFromSlice([]float64{10, 20, 30, 40}, 2, 2)
	require.NoError(t, err)
	b, err := ArrayFromSlice([]float64{2, 4, 5, 8}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{8, 16, 25, 32}, a.Sub(b).Eval().Data())
	assert.Equal(t, []float64{20, 80, 150, 320}, a.Mul(b).Eval().Data())
	assert.Equal(t, []float64{5, 5, 6, 5}, a.Div(b).Eval().Data())
}

func TestExprAddThenSubRoundTrip(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1.5, -2.25, 3.75, 0.5, -1, 2}, 2, 3)
	require.NoError(t, err)
	b, err := ArrayFromSlice([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, 2, 3)
	require.NoError(t, err)

	// (A + B) - B == A at every coefficient, within tolerance.
	c := a.Add(b).Sub(b).Eval()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.InDelta(t, a.At(i, j), c.At(i, j), eps)
		}
	}
}

func TestExprScalarBroadcast(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c := a.AddScalar(2.5).Eval()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, a.At(i, j)+2.5, c.At(i, j))
		}
	}

	assert.Equal(t, []float64{-1, 0, 1, 2}, a.SubScalar(2).Eval().Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, a.MulScalar(2).Eval().Data())
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, a.DivScalar(2).Eval().Data())
}

func TestExprSelfComposition(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	// a + a reads each handle independently and equals 2*a.
	c := a.Add(a).Eval()
	assert.Equal(t, []float64{2, 4, 6, 8}, c.Data())
}

func TestExprChaining(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := ArrayFromSlice([]float64{4, 3, 2, 1}, 2, 2)
	require.NoError(t, err)

	// ((a + b) * b - a) / 2
	c := a.Add(b).Mul(b).Sub(a).DivScalar(2).Eval()
	assert.Equal(t, []float64{9.5, 6.5, 3.5, 0.5}, c.Data())
}

func TestExprLazinessSeesMutation(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	expr := a.AddScalar(1)
	a.Set(0, 0, 100)

	// Lazy, not cached: the node re-reads storage on evaluation.
	assert.Equal(t, 101.0, expr.At(0, 0))
}

func TestExprUnaryOps(t *testing.T) {
	a, err := ArrayFromSlice([]float64{-1, 4, -9, 16}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -4, 9, -16}, a.Expr().Neg().Eval().Data())
	assert.Equal(t, []float64{1, 4, 9, 16}, a.Expr().Abs().Eval().Data())
	assert.Equal(t, []float64{1, 16, 81, 256}, a.Expr().Square().Eval().Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Expr().Abs().Sqrt().Eval().Data())
	assert.InDelta(t, -1.0, a.Expr().Inverse().Eval().At(0, 0), eps)
}

func TestExprExpLog(t *testing.T) {
	a, err := ArrayFromSlice([]float64{0, 1, 2, 3}, 2, 2)
	require.NoError(t, err)

	e := a.Expr().Exp().Eval()
	for i, v := range []float64{0, 1, 2, 3} {
		assert.InDelta(t, math.Exp(v), e.Data()[i], eps)
	}

	// log(exp(x)) == x
	back := a.Expr().Exp().Log().Eval()
	for i, v := range []float64{0, 1, 2, 3} {
		assert.InDelta(t, v, back.Data()[i], eps)
	}
}

func TestExprMap(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c := a.Expr().Map(func(v float64) float64 { return 3*v + 1 }).Eval()
	assert.Equal(t, []float64{4, 7, 10, 13}, c.Data())
}

func TestExprCwiseMinMax(t *testing.T) {
	a, err := ArrayFromSlice([]float64{1, 5, 3, 8}, 2, 2)
	require.NoError(t, err)
	b, err := ArrayFromSlice([]float64{4, 2, 6, 7}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 7}, a.Expr().CwiseMin(b).Eval().Data())
	assert.Equal(t, []float64{4, 5, 6, 8}, a.Expr().CwiseMax(b).Eval().Data())
}

func TestExprShapeMismatchPanics(t *testing.T) {
	a := NewArray[float64](3, 3)
	b := NewArray[float64](2, 2)

	// Composition fails fast, at node construction.
	assert.PanicsWithValue(t, "dense: add: shape mismatch 3x3 vs 2x2", func() { a.Add(b) })
	assert.Panics(t, func() { a.Sub(b) })
	assert.Panics(t, func() { a.Mul(b) })
	assert.Panics(t, func() { a.Div(b) })
	assert.Panics(t, func() { a.Expr().CwiseMin(b) })
}

func TestExprIntCoefficients(t *testing.T) {
	a, err := ArrayFromSlice([]int32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c := a.MulScalar(3).SubScalar(1).Eval()
	assert.Equal(t, []int32{2, 5, 8, 11}, c.Data())
}
