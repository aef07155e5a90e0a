// SPDX-License-Identifier: MIT
// Package matching_test contains shared fixtures for solver tests.
//
// Purpose:
//   - Build weight matrices from literals without fighting the Dense numeric policy.
//   - Provide an exhaustive oracle for small instances and a structural validator.

package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmatch/matching"
	"github.com/katalvlaran/kmatch/matrix"
)

// rawMatrix is a policy-free Matrix over row slices, used to feed values
// that Dense would refuse (NaN, Inf) or shapes it cannot represent (0×k).
type rawMatrix struct {
	rows, cols int
	data       [][]float64
}

func (m *rawMatrix) Rows() int { return m.rows }
func (m *rawMatrix) Cols() int { return m.cols }
func (m *rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, matrix.ErrOutOfRange
	}
	return m.data[i][j], nil
}
func (m *rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return matrix.ErrOutOfRange
	}
	m.data[i][j] = v
	return nil
}
func (m *rawMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.data))
	for i := range m.data {
		cp[i] = append([]float64(nil), m.data[i]...)
	}
	return &rawMatrix{rows: m.rows, cols: m.cols, data: cp}
}

// newRaw wraps a non-empty literal.
func newRaw(rows [][]float64) *rawMatrix {
	return &rawMatrix{rows: len(rows), cols: len(rows[0]), data: rows}
}

// mustDense builds a Dense from a literal or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomWeights returns an r×c literal. Integral weights are drawn from
// 0..9; otherwise uniform floats in [0,10).
func randomWeights(rng *rand.Rand, r, c int, integral bool) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if integral {
				out[i][j] = float64(rng.Intn(10))
			} else {
				out[i][j] = rng.Float64() * 10
			}
		}
	}

	return out
}

// bruteForceMax enumerates every permutation of the padded square problem
// and returns the best total over real pairs. Intended for n <= 7.
func bruteForceMax(w [][]float64) float64 {
	rows, cols := len(w), len(w[0])
	n := max(rows, cols)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := -1.0
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := 0.0
			for i, j := range perm {
				if i < rows && j < cols {
					total += w[i][j]
				}
			}
			best = max(best, total)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)

	return best
}

// requireValid checks the structural contract of a Result against w:
// shapes, index ranges, uniqueness, inverse consistency and Total.
func requireValid(t testing.TB, w [][]float64, res *matching.Result) {
	t.Helper()
	rows, cols := len(w), len(w[0])
	require.Equal(t, rows, res.Rows)
	require.Equal(t, cols, res.Cols)
	require.Len(t, res.ColToRow, cols)
	require.Len(t, res.RowToCol, rows)

	seen := make(map[int]bool, rows)
	total := 0.0
	for j, r := range res.ColToRow {
		require.GreaterOrEqual(t, r, matching.Unmatched, "column %d", j)
		require.Less(t, r, rows, "column %d", j)
		if r == matching.Unmatched {
			continue
		}
		require.False(t, seen[r], "row %d matched twice", r)
		seen[r] = true
		require.Equal(t, j, res.RowToCol[r], "inverse of column %d", j)
		total += w[r][j]
	}
	for i, j := range res.RowToCol {
		if j != matching.Unmatched {
			require.Equal(t, i, res.ColToRow[j], "inverse of row %d", i)
		}
	}
	require.InDelta(t, total, res.Total, 1e-9)
	require.Equal(t, len(seen), res.Matched())
}
