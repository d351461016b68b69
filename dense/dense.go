// Copyright 2026 The Cwise Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense is the public API for the coefficient-wise expression core.
//
// The package provides dense numeric containers and a lazy elementwise
// expression layer over them:
//   - Array[T]: dense 2D container with elementwise semantics
//   - Matrix[T]: dense 2D container with algebraic semantics
//   - ArrayExpr[T] / MatrixExpr[T]: lazy, composable expression wrappers
//   - zero-copy array/matrix view duality over shared storage
//
// Arithmetic builds expression trees; nothing is computed until the result
// is materialized (Assign, Eval) or reduced (Sum, MaxCoeff, ...):
//
//	a, _ := dense.ArrayFromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	b := dense.Ones[float64](2, 2)
//	c := a.Add(b).MulScalar(2).Eval() // single pass, no intermediates
//	a.AddAssign(b)                    // in place, no temporary
//	m := a.Matrix()                   // zero-copy algebraic view
package dense

import (
	"github.com/cwise-ml/cwise/internal/dense"
)

// Scalar is a constraint for supported coefficient types.
// Supported types: float32, float64, int32, int64.
type Scalar = dense.Scalar

// Expr is the read contract satisfied by containers, views, and lazy
// expressions alike.
type Expr[T Scalar] = dense.Expr[T]

// MutableExpr is the write contract required of assignment and in-place
// update destinations.
type MutableExpr[T Scalar] = dense.MutableExpr[T]

// Array is a dense 2D container with elementwise semantics.
type Array[T Scalar] = dense.Array[T]

// Matrix is a dense 2D container with algebraic semantics.
type Matrix[T Scalar] = dense.Matrix[T]

// ArrayExpr is a lazy expression carrying the elementwise capability.
type ArrayExpr[T Scalar] = dense.ArrayExpr[T]

// MatrixExpr is a lazy expression carrying the algebraic capability.
type MatrixExpr[T Scalar] = dense.MatrixExpr[T]

// ArrayView is a zero-copy mutable elementwise view over matrix storage.
type ArrayView[T Scalar] = dense.ArrayView[T]

// MatrixView is a zero-copy mutable algebraic view over array storage.
type MatrixView[T Scalar] = dense.MatrixView[T]

// Construction

// NewArray creates a zero-initialized rows x cols array.
// Panics if rows or cols is not positive.
func NewArray[T Scalar](rows, cols int) *Array[T] {
	return dense.NewArray[T](rows, cols)
}

// NewMatrix creates a zero-initialized rows x cols matrix.
// Panics if rows or cols is not positive.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	return dense.NewMatrix[T](rows, cols)
}

// ArrayFromSlice creates an array from row-major data. The slice is copied.
func ArrayFromSlice[T Scalar](data []T, rows, cols int) (*Array[T], error) {
	return dense.ArrayFromSlice(data, rows, cols)
}

// MatrixFromSlice creates a matrix from row-major data. The slice is copied.
func MatrixFromSlice[T Scalar](data []T, rows, cols int) (*Matrix[T], error) {
	return dense.MatrixFromSlice(data, rows, cols)
}

// Zeros creates a rows x cols array filled with zeros.
func Zeros[T Scalar](rows, cols int) *Array[T] {
	return dense.Zeros[T](rows, cols)
}

// Ones creates a rows x cols array filled with ones.
func Ones[T Scalar](rows, cols int) *Array[T] {
	return dense.Ones[T](rows, cols)
}

// Full creates a rows x cols array filled with value.
func Full[T Scalar](rows, cols int, value T) *Array[T] {
	return dense.Full(rows, cols, value)
}

// Eye creates the n x n identity matrix.
func Eye[T Scalar](n int) *Matrix[T] {
	return dense.Eye[T](n)
}

// Constant returns a lazy rows x cols expression whose every coefficient
// equals v. No storage is allocated.
func Constant[T Scalar](rows, cols int, v T) ArrayExpr[T] {
	return dense.Constant(rows, cols, v)
}

// Generate returns a lazy rows x cols expression whose coefficient at
// (i, j) is gen(i, j), recomputed on every read.
func Generate[T Scalar](rows, cols int, gen func(i, j int) T) ArrayExpr[T] {
	return dense.Generate(rows, cols, gen)
}

// NewArrayExpr wraps an arbitrary coefficient source with the elementwise
// capability, so user-defined Expr implementations compose with the
// built-in operators.
func NewArrayExpr[T Scalar](node Expr[T]) ArrayExpr[T] {
	return dense.NewArrayExpr(node)
}

// NewMatrixExpr wraps an arbitrary coefficient source with the algebraic
// capability.
func NewMatrixExpr[T Scalar](node Expr[T]) MatrixExpr[T] {
	return dense.NewMatrixExpr(node)
}
