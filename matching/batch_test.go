// SPDX-License-Identifier: MIT
package matching_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmatch/matching"
	"github.com/katalvlaran/kmatch/matrix"
)

func TestMaxWeightAll_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	ws := make([]matrix.Matrix, 24)
	for i := range ws {
		ws[i] = mustDense(t, randomWeights(rng, 1+rng.Intn(9), 1+rng.Intn(9), i%3 != 0))
	}

	got, err := matching.MaxWeightAll(context.Background(), ws, 4)
	require.NoError(t, err)
	require.Len(t, got, len(ws))

	for i, w := range ws {
		want, err := matching.MaxWeight(w)
		require.NoError(t, err)
		if diff := cmp.Diff(want.ColToRow, got[i].ColToRow); diff != "" {
			t.Errorf("item %d (-sequential +batch):\n%s", i, diff)
		}
		assert.Equal(t, want.Total, got[i].Total)
	}
}

func TestMaxWeightAll_DefaultLimitAndOptions(t *testing.T) {
	ws := []matrix.Matrix{
		mustDense(t, [][]float64{{10, 2}, {6, 0.5}}),
		mustDense(t, [][]float64{{3}}),
	}
	got, err := matching.MaxWeightAll(context.Background(), ws, 0, matching.WithMinWeight(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, matching.Unmatched}, got[0].ColToRow)
	assert.Equal(t, []int{0}, got[1].ColToRow)
}

func TestMaxWeightAll_Empty(t *testing.T) {
	got, err := matching.MaxWeightAll(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMaxWeightAll_ItemError(t *testing.T) {
	ws := []matrix.Matrix{
		mustDense(t, [][]float64{{1, 2}}),
		nil,
		mustDense(t, [][]float64{{3, 4}}),
	}
	got, err := matching.MaxWeightAll(context.Background(), ws, 1)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, matching.ErrNilWeights)
	assert.Contains(t, err.Error(), "item 1")
}

func TestMaxWeightAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ws := []matrix.Matrix{mustDense(t, [][]float64{{1}})}
	got, err := matching.MaxWeightAll(ctx, ws, 1)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}
