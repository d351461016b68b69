package dense

// Reductions. These are the only eager operations on the elementwise
// capability: they pull every coefficient of the expression tree exactly
// once, in row-major order, and fold it into a scalar without allocating.

// Sum returns the sum of all coefficients.
func (e ArrayExpr[T]) Sum() T {
	var acc T
	e.fold(func(v T) { acc += v })
	return acc
}

// Prod returns the product of all coefficients.
func (e ArrayExpr[T]) Prod() T {
	acc := T(1)
	e.fold(func(v T) { acc *= v })
	return acc
}

// MinCoeff returns the smallest coefficient.
func (e ArrayExpr[T]) MinCoeff() T {
	acc := e.node.At(0, 0)
	e.fold(func(v T) { acc = minOf(acc, v) })
	return acc
}

// MaxCoeff returns the largest coefficient.
func (e ArrayExpr[T]) MaxCoeff() T {
	acc := e.node.At(0, 0)
	e.fold(func(v T) { acc = maxOf(acc, v) })
	return acc
}

// Mean returns the arithmetic mean of all coefficients. For integer
// coefficient types the division truncates.
func (e ArrayExpr[T]) Mean() T {
	return e.Sum() / T(e.Size())
}

func (e ArrayExpr[T]) fold(visit func(T)) {
	for i := 0; i < e.node.Rows(); i++ {
		for j := 0; j < e.node.Cols(); j++ {
			visit(e.node.At(i, j))
		}
	}
}
