package dense

import "math"

// Per-coefficient functions shared by the operator methods and the
// in-place update targets.

func add[T Scalar](a, b T) T { return a + b }
func sub[T Scalar](a, b T) T { return a - b }
func mul[T Scalar](a, b T) T { return a * b }
func div[T Scalar](a, b T) T { return a / b }

func minOf[T Scalar](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxOf[T Scalar](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func negOf[T Scalar](v T) T { return -v }

func absOf[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func squareOf[T Scalar](v T) T { return v * v }

func inverseOf[T Scalar](v T) T { return T(1) / v }

// The math functions are computed in float64 and converted back, which
// truncates for integer coefficient types.

func sqrtOf[T Scalar](v T) T { return T(math.Sqrt(float64(v))) }
func expOf[T Scalar](v T) T  { return T(math.Exp(float64(v))) }
func logOf[T Scalar](v T) T  { return T(math.Log(float64(v))) }
