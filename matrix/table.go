// SPDX-License-Identifier: MIT

// Package matrix - Table: generic row-major grid for index vectors and masks.
//
// Purpose:
//   - Back int32 match vectors (1×n, -1 = unmatched) and uint8 masks (visit
//     flags, 0/1 assignment maps) with the same bounds-checked surface as Dense.
//   - No numeric policy: every value of T is storable.

package matrix

import (
	"fmt"
	"strings"
)

// Table is a row-major grid of T. The zero value is not usable; construct
// with NewTable or NewTableFilled.
type Table[T Element] struct {
	r, c int
	data []T
}

var (
	_ Grid[int32] = (*Table[int32])(nil)
	_ Grid[uint8] = (*Table[uint8])(nil)
)

// NewTable allocates an r×c table of zero values.
// Errors: ErrInvalidDimensions when r<=0 or c<=0.
func NewTable[T Element](rows, cols int) (*Table[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Table[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewTableFilled allocates an r×c table with every cell set to v.
func NewTableFilled[T Element](rows, cols int, v T) (*Table[T], error) {
	t, err := NewTable[T](rows, cols)
	if err != nil {
		return nil, err
	}
	t.Fill(v)

	return t, nil
}

// Rows returns the row count.
func (t *Table[T]) Rows() int { return t.r }

// Cols returns the column count.
func (t *Table[T]) Cols() int { return t.c }

// Shape packs Rows() and Cols().
func (t *Table[T]) Shape() (rows, cols int) { return t.r, t.c }

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
func (t *Table[T]) At(row, col int) (T, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		var zero T
		return zero, fmt.Errorf("Table.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return t.data[row*t.c+col], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
func (t *Table[T]) Set(row, col int, v T) error {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return fmt.Errorf("Table.%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	t.data[row*t.c+col] = v

	return nil
}

// Fill overwrites every cell with v.
// Complexity: O(r*c).
func (t *Table[T]) Fill(v T) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Count returns how many cells equal v.
func (t *Table[T]) Count(v T) int {
	n := 0
	for _, x := range t.data {
		if x == v {
			n++
		}
	}

	return n
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (t *Table[T]) String() string {
	var b strings.Builder
	for i := 0; i < t.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < t.c; j++ {
			b.WriteString(fmt.Sprint(t.data[i*t.c+j]))
			if j+1 < t.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
