package dense

// Zeros creates a rows x cols array filled with zeros.
//
// Example:
//
//	a := dense.Zeros[float32](3, 4)
func Zeros[T Scalar](rows, cols int) *Array[T] {
	// Buffer is already zero-initialized by make().
	return NewArray[T](rows, cols)
}

// Ones creates a rows x cols array filled with ones.
func Ones[T Scalar](rows, cols int) *Array[T] {
	return Full(rows, cols, T(1))
}

// Full creates a rows x cols array filled with value.
//
// Example:
//
//	a := dense.Full[float32](3, 3, 3.14)
func Full[T Scalar](rows, cols int, value T) *Array[T] {
	a := NewArray[T](rows, cols)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Eye creates the n x n identity matrix.
func Eye[T Scalar](n int) *Matrix[T] {
	m := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, T(1))
	}
	return m
}

// Constant returns a lazy rows x cols expression whose every coefficient
// equals v. No storage is allocated; the value is produced on each read.
// Panics if rows or cols is not positive.
func Constant[T Scalar](rows, cols int, v T) ArrayExpr[T] {
	return Generate(rows, cols, func(int, int) T { return v })
}

// Generate returns a lazy rows x cols expression whose coefficient at
// (i, j) is gen(i, j), recomputed on every read. It composes with any
// other expression operand.
// Panics if rows or cols is not positive.
//
// Example:
//
//	idx := dense.Generate(3, 3, func(i, j int) float64 { return float64(i*3 + j) })
//	sum := idx.Add(dense.Constant[float64](3, 3, 1)).Eval()
func Generate[T Scalar](rows, cols int, gen func(i, j int) T) ArrayExpr[T] {
	if rows <= 0 || cols <= 0 {
		panic("dense: Generate requires positive dimensions")
	}
	return ArrayExpr[T]{node: nullaryNode[T]{rows: rows, cols: cols, gen: gen}}
}
