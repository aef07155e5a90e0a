// SPDX-License-Identifier: MIT

// Package matrix: the adapter capability consumed by solvers.
// This file contains ONLY the public interfaces and the element constraint;
// concrete storage lives in impl_dense.go, table.go and gonum.go.
package matrix

// Element enumerates the element types a Grid may hold: float weights,
// int32 index vectors (match arrays) and uint8 masks (visit flags, 0/1 maps).
type Element interface {
	~float32 | ~float64 | ~int32 | ~uint8
}

// Grid is a bounds-checked two-dimensional container of T.
//
// Contract:
//   - Rows() and Cols() are constant for the lifetime of the value.
//   - At/Set return ErrOutOfRange (wrapped) for i<0, i>=Rows(), j<0, j>=Cols().
//   - Implementations may reject values in Set (e.g. NaN for float grids).
//
// Complexity: all methods are expected O(1).
type Grid[T Element] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (T, error)

	// Set assigns v at position (i, j).
	Set(i, j int, v T) error
}

// Matrix represents a two-dimensional mutable array of float64 values.
// It is the input type of weight-based algorithms.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Grid[float64]

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
