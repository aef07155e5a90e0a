// SPDX-License-Identifier: MIT

// Package matching defines options, errors and result types for the
// maximum-weight bipartite matching solver.
package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kmatch/matrix"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultEpsilon is the magnitude below which a reduced edge weight
	// u[i]+v[j]-C[i][j] is treated as exactly zero (edge admissible).
	DefaultEpsilon = 1e-4

	// DefaultMinWeight disables gating: every solved pair is reported.
	DefaultMinWeight = 0.0

	// Unmatched marks a column (or row) without a partner in a Result.
	Unmatched = -1
)

const (
	panicEpsilonInvalid   = "matching: WithEpsilon: eps must be finite and > 0"
	panicMinWeightInvalid = "matching: WithMinWeight: weight must be finite and >= 0"
)

var (
	// ErrNilWeights is returned when the weight matrix is nil.
	ErrNilWeights = errors.New("matching: weights matrix is nil")

	// ErrEmptyWeights is returned when the weight matrix has a zero dimension.
	ErrEmptyWeights = errors.New("matching: weights matrix has a zero dimension")

	// ErrInvalidWeight is returned when a weight is NaN, ±Inf or negative.
	// The underlying matrix sentinel (matrix.ErrNaNInf or matrix.ErrNegative)
	// is wrapped alongside it.
	ErrInvalidWeight = errors.New("matching: weight must be finite and non-negative")
)

// Option configures the solver. Constructors panic on nonsensical values
// (programmer error); user data errors are returned, never panicked.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	// Epsilon is the zero-gap tolerance of the admissibility test. The solver
	// widens it when the weights are large enough for float64 rounding to
	// exceed it.
	Epsilon float64

	// MinWeight gates reporting: a solved pair whose weight is < MinWeight
	// is reported as unmatched. The optimal matching itself is unaffected.
	MinWeight float64
}

// DefaultOptions returns Options with DefaultEpsilon and no gating.
func DefaultOptions() Options {
	return Options{
		Epsilon:   DefaultEpsilon,
		MinWeight: DefaultMinWeight,
	}
}

// WithEpsilon sets the zero-gap tolerance. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithMinWeight reports pairs lighter than w as unmatched.
// Panics unless w is finite and >= 0.
func WithMinWeight(w float64) Option {
	if !(w >= 0) || math.IsInf(w, 0) {
		panic(panicMinWeightInvalid)
	}

	return func(o *Options) {
		o.MinWeight = w
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Pair is one reported assignment of a source row to a target column.
type Pair struct {
	Row    int
	Col    int
	Weight float64
}

// Result is the caller-visible outcome of a solve, restricted to the
// original rows×cols shape. Padding participants never appear in it.
type Result struct {
	// ColToRow[j] is the row matched to column j, or Unmatched.
	ColToRow []int

	// RowToCol[i] is the column matched to row i, or Unmatched.
	RowToCol []int

	// Total is the sum of weights over reported pairs.
	Total float64

	// Rows and Cols echo the input shape.
	Rows, Cols int

	pairs []Pair // column order
}

// Pairs returns the reported pairs in increasing column order.
// The slice is a copy.
func (r *Result) Pairs() []Pair {
	out := make([]Pair, len(r.pairs))
	copy(out, r.pairs)

	return out
}

// Matched reports how many pairs were reported.
func (r *Result) Matched() int { return len(r.pairs) }

// Mask returns a Rows×Cols 0/1 table with 1 on every reported pair.
// Every row and every column of the mask holds at most one 1.
func (r *Result) Mask() (*matrix.Table[uint8], error) {
	mask, err := matrix.NewTable[uint8](r.Rows, r.Cols)
	if err != nil {
		return nil, err
	}
	for _, p := range r.pairs {
		if err = mask.Set(p.Row, p.Col, 1); err != nil {
			return nil, err
		}
	}

	return mask, nil
}

// CopyTo writes ColToRow into dst, which must be 1×Cols.
// Errors: matrix.ErrDimensionMismatch (wrapped) for any other shape, or when
// ColToRow itself does not hold Cols entries.
func (r *Result) CopyTo(dst matrix.Grid[int32]) error {
	if dst == nil {
		return fmt.Errorf("matching: CopyTo: %w", matrix.ErrNilMatrix)
	}
	vec := make([]int32, len(r.ColToRow))
	for j, row := range r.ColToRow {
		vec[j] = int32(row)
	}
	if err := matrix.ValidateVecLen(vec, r.Cols); err != nil {
		return fmt.Errorf("matching: CopyTo: ColToRow: %w", err)
	}
	if dst.Rows() != 1 || dst.Cols() != r.Cols {
		return fmt.Errorf("matching: CopyTo: dst is %dx%d, want 1x%d: %w",
			dst.Rows(), dst.Cols(), r.Cols, matrix.ErrDimensionMismatch)
	}
	for j, v := range vec {
		if err := dst.Set(0, j, v); err != nil {
			return err
		}
	}

	return nil
}
