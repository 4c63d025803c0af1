package core_test

import (
	"testing"

	"github.com/katalvlaran/dtmc/core"
	"github.com/katalvlaran/dtmc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMatrix(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0.5, 0.5, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)

	g, err := core.FromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []int{0, 1}, g.Successors(0))
	assert.Equal(t, []int{0, 2}, g.Predecessors(0))
	assert.True(t, g.HasSelfLoop(0))
	assert.False(t, g.HasSelfLoop(1))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 1, g.InDegree(2))
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 0}}, g.Edges())
}

func TestFromMatrix_Errors(t *testing.T) {
	_, err := core.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.NewFromRows([][]float64{{1, 0}})
	require.NoError(t, err)
	_, err = core.FromMatrix(m)
	require.ErrorIs(t, err, core.ErrNonSquare)
}

func TestNew(t *testing.T) {
	g, err := core.New(3, [][2]int{{0, 2}, {0, 1}, {0, 2}, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, g.Successors(0))
	assert.Equal(t, 3, g.Size(), "duplicates collapse")
	assert.Equal(t, []int{0, 2}, g.Predecessors(2))

	_, err = core.New(2, [][2]int{{0, 2}})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = core.New(-1, nil)
	require.ErrorIs(t, err, core.ErrNegativeOrder)
}

func TestOutOfRangeQueries(t *testing.T) {
	g, err := core.New(1, nil)
	require.NoError(t, err)
	assert.Nil(t, g.Successors(5))
	assert.Nil(t, g.Predecessors(-1))
	assert.False(t, g.HasEdge(3, 0))
	assert.Equal(t, 0, g.OutDegree(9))
}
