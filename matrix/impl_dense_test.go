// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmatch/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRejectsNaNInf checks the finite-only policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, -3))
}

// TestCloneIndependence ensures Clone() does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	cv, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cv)

	// policy survives the copy
	require.ErrorIs(t, clone.Set(1, 1, math.NaN()), matrix.ErrNaNInf)
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}

func TestViewWritesThrough(t *testing.T) {
	m := MustDense(t, 3, 3)
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	require.NoError(t, v.Set(0, 1, 9))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, got)

	back, err := v.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, back)

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	_, err = m.View(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.View(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDoVisitsRowMajorAndStops(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

func TestApply(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {4, 8}})
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return 1 / v }))
	Compare(t, [][]float64{{1, 0.5}, {0.25, 0.125}}, m)

	zero := MustDense(t, 1, 2)
	require.ErrorIs(t, zero.Apply(func(_, _ int, v float64) float64 { return 1 / v }), matrix.ErrNaNInf)
}
