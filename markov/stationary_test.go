package markov_test

import (
	"testing"

	"github.com/katalvlaran/dtmc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationaryDistribution(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"single", [][]float64{{1}}, []float64{1}},
		{"flip", [][]float64{{0, 1}, {1, 0}}, []float64{0.5, 0.5}},
		{"weather", [][]float64{{0.9, 0.1}, {0.5, 0.5}}, []float64{5.0 / 6, 1.0 / 6}},
		{"land of oz", landOfOz, []float64{0.4, 0.2, 0.4}},
		{"stock market", [][]float64{
			{0.9, 0.075, 0.025},
			{0.15, 0.8, 0.05},
			{0.25, 0.25, 0.5},
		}, []float64{0.625, 0.3125, 0.0625}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := mustChain(t, tc.rows)
			pi, err := c.StationaryDistribution()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, pi, 1e-9)
			assertStationary(t, c.Rows(), pi)
		})
	}
}

// TestStationaryDistribution_Reducible documents the least-squares fit on a
// chain with two closed classes and checks the per-class alternative.
func TestStationaryDistribution_Reducible(t *testing.T) {
	c := mustChain(t, [][]float64{
		{0.5, 0.5, 0, 0},
		{0.5, 0.5, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	pi, err := c.StationaryDistribution()
	require.NoError(t, err)
	require.Len(t, pi, 4)
	var s float64
	for _, v := range pi {
		s += v
	}
	assert.InDelta(t, 1.0, s, 1e-9)

	all, err := c.StationaryDistributions()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0, 0}, all[0], 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0.5, 0.5}, all[1], 1e-9)
	for _, d := range all {
		assertStationary(t, c.Rows(), d)
	}
}

func TestStationaryDistributions_TransientMassIsZero(t *testing.T) {
	c := mustChain(t, randomWalk5)
	all, err := c.StationaryDistributions()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 0, 0}, all[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 1}, all[1], 1e-12)
}

// assertStationary checks π·P = π within 1e-9.
func assertStationary(t *testing.T, rows [][]float64, pi []float64) {
	t.Helper()
	p, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	pt, err := matrix.Transpose(p)
	require.NoError(t, err)
	next, err := matrix.MatVec(pt, pi)
	require.NoError(t, err)
	assert.InDeltaSlice(t, pi, next, 1e-9)
}
