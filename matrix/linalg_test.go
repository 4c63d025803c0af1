// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dtmc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestTransposeSubMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())

	prod, err := matrix.Mul(a, at)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{14, 32}, {32, 77}}, prod.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	diff, err := matrix.Sub(a, a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, diff.ToRows())

	_, err = matrix.Sub(a, at)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVecAndAppendRow(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := matrix.AppendRow(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {1, 1}}, s.ToRows())
	_, err = matrix.AppendRow(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_NeedsPivoting(t *testing.T) {
	// Zero leading pivot: fails without row exchanges.
	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	x, err := matrix.Solve(a, []float64{2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 2}, x, tol)
}

func TestInverse(t *testing.T) {
	a := mustRows(t, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	id, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	want, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(want, id, 1e-12), "A·A⁻¹ = %v", id)
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{0, 0}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLeastSquares_Overdetermined(t *testing.T) {
	// Fit y = c0 + c1·x through three collinear points.
	a := mustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
	x, rank, err := matrix.LeastSquares(a, []float64{1, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-12)
}

func TestLeastSquares_Inconsistent(t *testing.T) {
	// Normal-equation solution of x = 1, x = 3 is the mean.
	a := mustRows(t, [][]float64{{1}, {1}})
	x, rank, err := matrix.LeastSquares(a, []float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.InDelta(t, 2.0, x[0], 1e-12)
}

func TestLeastSquares_RankDeficient(t *testing.T) {
	// Two identical columns: rank 1, basic solution zeroes one unknown.
	a := mustRows(t, [][]float64{{1, 1}, {1, 1}})
	x, rank, err := matrix.LeastSquares(a, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.InDelta(t, 2.0, x[0]+x[1], 1e-12)
	assert.True(t, x[0] == 0 || x[1] == 0)
}

func TestLeastSquares_Errors(t *testing.T) {
	_, _, err := matrix.LeastSquares(mustRows(t, [][]float64{{0, 0}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, _, err = matrix.LeastSquares(mustRows(t, [][]float64{{1}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func BenchmarkInverse64(b *testing.B) {
	const n = 64
	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
		rows[i][i] += n
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Inverse(a); err != nil {
			b.Fatal(err)
		}
	}
}
