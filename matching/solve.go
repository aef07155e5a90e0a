// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kmatch/matrix"
)

// MaxWeight computes a maximum-weight matching between the rows (sources,
// e.g. trackers) and columns (targets, e.g. detections) of w.
//
// Implementation:
//   - Stage 1: validate w (non-nil, positive shape, finite non-negative weights).
//   - Stage 2: embed w into an n×n zero matrix, n = max(rows, cols).
//   - Stage 3: seed potentials with per-row and per-column maxima.
//   - Stage 4: for every row, search for an augmenting path over admissible
//     edges; on failure lower the visited rows and raise the visited columns by
//     the smallest slack, then search again.
//   - Stage 5: restrict the square assignment to rows×cols; columns held by
//     padding rows are reported as Unmatched.
//
// Behavior highlights:
//   - Columns are scanned in increasing index order and the first successful
//     augmenting path wins, so ties resolve identically on every run.
//   - Pairs lighter than Options.MinWeight are reported as Unmatched.
//   - w is read only; all solver state is local to the call.
//
// Errors:
//   - ErrNilWeights, ErrEmptyWeights, ErrInvalidWeight (returned before any work).
//   - A typed-nil adapter such as (*matrix.Dense)(nil) is a caller error; it
//     is not reported as ErrNilWeights and panics on first access.
//
// Complexity:
//   - Time O(n³) typical, O(n⁴) worst case; Memory O(n²).
func MaxWeight(w matrix.Matrix, opts ...Option) (*Result, error) {
	return maxWeight(w, gatherOptions(opts))
}

func maxWeight(w matrix.Matrix, o Options) (*Result, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}

	sq, err := matrix.PadSquare(w)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}

	s := newSolver(sq, o.Epsilon)
	s.run()

	return s.result(w, o.MinWeight)
}

// validateWeights rejects malformed input before any allocation of solver state.
// A typed-nil adapter (e.g. (*matrix.Dense)(nil)) is a caller error and is
// not detected.
func validateWeights(w matrix.Matrix) error {
	if w == nil {
		return ErrNilWeights
	}
	if err := matrix.ValidateShape(w); err != nil {
		return fmt.Errorf("%w: %dx%d", ErrEmptyWeights, w.Rows(), w.Cols())
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return weightError(err)
	}
	if err := matrix.ValidateNonNegative(w); err != nil {
		return weightError(err)
	}

	return nil
}

// weightError tags value violations with ErrInvalidWeight; access errors
// from a misbehaving adapter pass through untouched.
func weightError(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) || errors.Is(err, matrix.ErrNegative) {
		return fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	return fmt.Errorf("matching: %w", err)
}

// solver owns every piece of mutable state of one solve call.
type solver struct {
	n   int
	eps float64 // effective zero-gap tolerance, see tolerance

	c []float64 // n×n working weights, row-major
	u []float64 // row potentials
	v []float64 // column potentials

	match []int // match[j] = row holding column j, or Unmatched

	rowVisited []bool    // per augmenting attempt
	colVisited []bool    // per augmenting attempt
	slack      []float64 // per outer row
}

// roundingUnits is how many units of float64 rounding, per row of the
// working matrix, the zero-gap tolerance absorbs.
const roundingUnits = 16

// tolerance widens eps to cover the rounding carried by potentials and slack
// of magnitude maxC over an n×n solve. For n*maxC below about 3e10 it is
// eps itself.
func tolerance(eps float64, n int, maxC float64) float64 {
	return max(eps, roundingUnits*float64(n)*maxC*0x1p-52)
}

// newSolver copies the padded weights and seeds the potentials.
func newSolver(sq *matrix.Dense, eps float64) *solver {
	n := sq.Rows()
	s := &solver{
		n:          n,
		c:          make([]float64, n*n),
		u:          make([]float64, n),
		v:          make([]float64, n),
		match:      make([]int, n),
		rowVisited: make([]bool, n),
		colVisited: make([]bool, n),
		slack:      make([]float64, n),
	}

	// weights are non-negative, so 0 is a valid starting maximum
	var maxC float64
	sq.Do(func(i, j int, x float64) bool {
		s.c[i*n+j] = x
		if x > s.u[i] {
			s.u[i] = x
		}
		if x > s.v[j] {
			s.v[j] = x
		}
		maxC = max(maxC, x)
		return true
	})
	s.eps = tolerance(eps, n, maxC)
	for j := range s.match {
		s.match[j] = Unmatched
	}

	return s
}

// run matches every row of the square working matrix.
func (s *solver) run() {
	for i := 0; i < s.n; i++ {
		for j := range s.slack {
			s.slack[j] = math.Inf(1)
		}
		for {
			clear(s.rowVisited)
			clear(s.colVisited)
			if s.augment(i) {
				break
			}
			s.relax()
		}
	}
	s.mustBePerfect()
}

// relax shifts potentials by the smallest slack of an unvisited column.
// Visited pairs keep their reduced weight; at least one new edge turns admissible.
//
// Carried slack drifts from the recomputed gaps by rounding. A minimum below
// the tolerance can only be such drift, so slack is rebuilt from the current
// potentials before the step is taken.
func (s *solver) relax() {
	delta := s.minSlack()
	if delta < s.eps {
		s.resync()
		delta = s.minSlack()
	}
	if !(delta > 0) || math.IsInf(delta, 1) {
		panic(fmt.Sprintf("matching: invariant violated: slack update delta=%g", delta))
	}

	for j, seen := range s.colVisited {
		if seen {
			s.v[j] += delta
		} else {
			s.slack[j] -= delta
		}
	}
	for k, seen := range s.rowVisited {
		if seen {
			s.u[k] -= delta
		}
	}
}

// minSlack returns the smallest slack over unvisited columns, +Inf if none.
func (s *solver) minSlack() float64 {
	delta := math.Inf(1)
	for j, seen := range s.colVisited {
		if !seen && s.slack[j] < delta {
			delta = s.slack[j]
		}
	}

	return delta
}

// resync recomputes slack[j] for every unvisited column as the smallest
// reduced weight from a visited row.
func (s *solver) resync() {
	var j, r int
	var gap float64
	for j = 0; j < s.n; j++ {
		if s.colVisited[j] {
			continue
		}
		s.slack[j] = math.Inf(1)
		for r = 0; r < s.n; r++ {
			if !s.rowVisited[r] {
				continue
			}
			gap = s.u[r] + s.v[j] - s.c[r*s.n+j]
			if gap < s.slack[j] {
				s.slack[j] = gap
			}
		}
	}
}

// mustBePerfect panics unless every column holds a distinct row.
func (s *solver) mustBePerfect() {
	taken := make([]bool, s.n)
	for j, r := range s.match {
		if r < 0 || r >= s.n || taken[r] {
			panic(fmt.Sprintf("matching: invariant violated: column %d holds row %d", j, r))
		}
		taken[r] = true
	}
}

// result restricts the square assignment to the caller's rows×cols.
func (s *solver) result(w matrix.Matrix, minWeight float64) (*Result, error) {
	rows, cols := w.Rows(), w.Cols()
	res := &Result{
		ColToRow: make([]int, cols),
		RowToCol: make([]int, rows),
		Rows:     rows,
		Cols:     cols,
		pairs:    make([]Pair, 0, min(rows, cols)),
	}
	for i := range res.RowToCol {
		res.RowToCol[i] = Unmatched
	}

	var j, r int
	var x float64
	var err error
	for j = 0; j < cols; j++ {
		res.ColToRow[j] = Unmatched
		r = s.match[j]
		if r >= rows {
			continue // padding row
		}
		if x, err = w.At(r, j); err != nil {
			return nil, fmt.Errorf("matching: %w", err)
		}
		if x < minWeight {
			continue
		}
		res.ColToRow[j] = r
		res.RowToCol[r] = j
		res.Total += x
		res.pairs = append(res.pairs, Pair{Row: r, Col: j, Weight: x})
	}

	return res, nil
}
