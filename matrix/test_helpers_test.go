// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kmatch/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing generic code
// paths that must not rely on *Dense internals.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// Compare asserts that m equals want element-wise (exact comparison).
func Compare(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if got != want[i][j] {
				t.Fatalf("(%d,%d) = %g, want %g", i, j, got, want[i][j])
			}
		}
	}
}
