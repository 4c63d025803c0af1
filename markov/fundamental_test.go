package markov_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dtmc/markov"
	"github.com/katalvlaran/dtmc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalWalk(t *testing.T) *markov.Chain {
	t.Helper()
	cf, _, err := mustChain(t, randomWalk5).CanonicalForm()
	require.NoError(t, err)

	return cf
}

func TestFundamentalMatrix_RandomWalk(t *testing.T) {
	n, err := canonicalWalk(t).FundamentalMatrix()
	require.NoError(t, err)
	want := [][]float64{
		{1.5, 1, 0.5},
		{1, 2, 1},
		{0.5, 1, 1.5},
	}
	wm, err := matrix.NewFromRows(want)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(wm, n, 1e-12), "N = %v", n)
}

func TestExpectedStepsToAbsorption(t *testing.T) {
	steps, err := canonicalWalk(t).ExpectedStepsToAbsorption()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4, 3}, steps, 1e-12)
}

func TestAbsorptionProbabilities(t *testing.T) {
	b, err := canonicalWalk(t).AbsorptionProbabilities()
	require.NoError(t, err)
	wm, err := matrix.NewFromRows([][]float64{
		{0.75, 0.25},
		{0.5, 0.5},
		{0.25, 0.75},
	})
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(wm, b, 1e-12), "B = %v", b)

	// Rows of B are distributions.
	for _, row := range b.ToRows() {
		assert.InDelta(t, 1.0, row[0]+row[1], 1e-12)
	}
}

func TestFundamentalMatrix_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		kind markov.ComputationKind
	}{
		{"not canonical", [][]float64{{1, 0}, {0.5, 0.5}}, markov.NotCanonical},
		{"no transient states", [][]float64{{0, 1}, {1, 0}}, markov.EmptyPartition},
		{"single absorbing", [][]float64{{1}}, markov.EmptyPartition},
		// State 0 leaks 1e-12 < ε: transient by reachability, yet Q is not
		// substochastic within tolerance.
		{"leak below epsilon", [][]float64{{1 - 1e-12, 1e-12}, {0, 1}}, markov.SingularBlock},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := mustChain(t, tc.rows)
			for _, call := range []func() error{
				func() error { _, err := c.FundamentalMatrix(); return err },
				func() error { _, err := c.ExpectedStepsToAbsorption(); return err },
				func() error { _, err := c.AbsorptionProbabilities(); return err },
			} {
				err := call()
				require.ErrorIs(t, err, markov.ErrComputation)
				var ce *markov.ComputationError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tc.kind, ce.Kind)
				assert.Contains(t, err.Error(), tc.kind.String())
			}
		})
	}
}

func TestComputationKindString(t *testing.T) {
	assert.Equal(t, "SingularBlock", markov.SingularBlock.String())
	assert.Equal(t, "ComputationKind(9)", markov.ComputationKind(9).String())
	assert.Equal(t, "ValidationKind(9)", markov.ValidationKind(9).String())
}
