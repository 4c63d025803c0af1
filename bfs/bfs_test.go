package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dtmc/bfs"
	"github.com/katalvlaran/dtmc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *core.Digraph {
	t.Helper()
	g, err := core.New(n, edges)
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, 2, nil)
	_, err = bfs.BFS(g, 2)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Layers checks visit order, depths and parents on a directed diamond.
func TestBFS_Layers(t *testing.T) {
	// 0 → 1 → 3, 0 → 2 → 3, 3 → 4
	g := mustGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 3}, res.Depth)
	assert.Equal(t, 1, res.Parent[3], "lowest-index parent discovers first")

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, path)
}

// TestBFS_Directed ensures edges are followed only forward.
func TestBFS_Directed(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{1, 0}, {1, 2}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Reached(1))

	_, err = res.PathTo(2)
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	// path 0→1→2→3
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		seen = append(seen, id)
		if id == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, seen)
}

func TestReachable(t *testing.T) {
	// 2 → 0 ⇄ 1, 3 isolated with self-loop
	g := mustGraph(t, 4, [][2]int{{2, 0}, {0, 1}, {1, 0}, {3, 3}})
	assert.Equal(t, []int{0, 1}, bfs.Reachable(g, 0))
	assert.Equal(t, []int{0, 1, 2}, bfs.Reachable(g, 2))
	assert.Equal(t, []int{3}, bfs.Reachable(g, 3))
	assert.Nil(t, bfs.Reachable(g, 7))
}

func TestWeaklyConnected(t *testing.T) {
	// {0,1,2} joined only through edge directions pointing inward to 1; {3}; {4,5}
	g := mustGraph(t, 6, [][2]int{{0, 1}, {2, 1}, {5, 4}, {3, 3}})
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5}}, bfs.WeaklyConnected(g))
	assert.Nil(t, bfs.WeaklyConnected(nil))
}
