// SPDX-License-Identifier: MIT

// Package matrix - gonum backend adapter.
//
// Purpose:
//   - Let callers that already hold gonum matrices feed them to solvers without
//     copying, behind the same error-returning Matrix surface as Dense.
//   - gonum panics on out-of-range access; the adapter checks bounds first so
//     the public surface never panics.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Gonum exposes a *mat.Dense as a Matrix. Reads and writes go straight to the
// wrapped gonum storage (no copy), so mutations are visible on both sides.
type Gonum struct {
	m *mat.Dense
}

var _ Matrix = (*Gonum)(nil)

// FromGonum wraps d.
// Errors: ErrNilMatrix for a nil pointer, ErrInvalidDimensions for an empty d.
func FromGonum(d *mat.Dense) (*Gonum, error) {
	if d == nil {
		return nil, validatorErrorf("FromGonum", ErrNilMatrix)
	}
	if d.IsEmpty() {
		return nil, validatorErrorf("FromGonum", ErrInvalidDimensions)
	}

	return &Gonum{m: d}, nil
}

// Rows returns the wrapped row count.
func (g *Gonum) Rows() int {
	r, _ := g.m.Dims()
	return r
}

// Cols returns the wrapped column count.
func (g *Gonum) Cols() int {
	_, c := g.m.Dims()
	return c
}

// At reads (i,j) after a bounds check.
func (g *Gonum) At(i, j int) (float64, error) {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("Gonum.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}

// Set writes (i,j) after a bounds check, rejecting NaN/±Inf.
func (g *Gonum) Set(i, j int, v float64) error {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("Gonum.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Gonum.%s(%d,%d): %w", ctxSet, i, j, ErrNaNInf)
	}
	g.m.Set(i, j, v)

	return nil
}

// Clone deep-copies the gonum storage.
func (g *Gonum) Clone() Matrix {
	return &Gonum{m: mat.DenseCopyOf(g.m)}
}

// Raw returns the wrapped gonum matrix.
func (g *Gonum) Raw() *mat.Dense { return g.m }

// ToGonum copies any Matrix into a fresh *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions, or any At error of m.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateShape(m); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if data[i*cols+j], err = m.At(i, j); err != nil {
				return nil, validatorErrorf("ToGonum", err)
			}
		}
	}

	return mat.NewDense(rows, cols, data), nil
}
