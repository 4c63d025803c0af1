package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/dtmc/matrix"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexNotFound indicates an index outside 0..Order()-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeOrder indicates New was called with n < 0.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrNonSquare indicates FromMatrix received a non-square matrix.
	ErrNonSquare = errors.New("core: adjacency source is not square")
)

// Digraph is an immutable directed graph over vertices 0..n-1.
// succ[i] and pred[i] are sorted ascending and contain no duplicates.
type Digraph struct {
	n    int
	m    int
	succ [][]int
	pred [][]int
}

// FromMatrix builds the transition graph of m: edge i→j iff m[i][j] > 0.
// Rows are scanned in ascending column order, so adjacency comes out sorted.
// Complexity: O(n²).
func FromMatrix(m matrix.Matrix) (*Digraph, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("core: FromMatrix: %w", err)
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}
	n := m.Rows()
	g := newEmpty(n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("core: FromMatrix: %w", err)
			}
			if v > 0 {
				g.succ[i] = append(g.succ[i], j)
				g.pred[j] = append(g.pred[j], i)
				g.m++
			}
		}
	}

	return g, nil
}

// New builds a Digraph with n vertices from an explicit edge list.
// Duplicate edges collapse into one. Endpoints must lie in 0..n-1.
// Complexity: O(V + E log E).
func New(n int, edges [][2]int) (*Digraph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := newEmpty(n)
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("core: edge %d→%d: %w", e[0], e[1], ErrVertexNotFound)
		}
		g.succ[e[0]] = append(g.succ[e[0]], e[1])
	}
	for i := 0; i < n; i++ {
		g.succ[i] = sortUnique(g.succ[i])
		g.m += len(g.succ[i])
		for _, j := range g.succ[i] {
			g.pred[j] = append(g.pred[j], i)
		}
	}

	return g, nil
}

func newEmpty(n int) *Digraph {
	return &Digraph{
		n:    n,
		succ: make([][]int, n),
		pred: make([][]int, n),
	}
}

// Order returns the number of vertices.
func (g *Digraph) Order() int { return g.n }

// Size returns the number of edges, self-loops included.
func (g *Digraph) Size() int { return g.m }

// Successors returns the sorted out-neighbors of i (nil when i is out of range).
// The slice is shared; callers must not modify it.
func (g *Digraph) Successors(i int) []int {
	if !g.valid(i) {
		return nil
	}

	return g.succ[i]
}

// Predecessors returns the sorted in-neighbors of i (nil when i is out of range).
// The slice is shared; callers must not modify it.
func (g *Digraph) Predecessors(i int) []int {
	if !g.valid(i) {
		return nil
	}

	return g.pred[i]
}

// OutDegree counts edges leaving i, self-loop included.
func (g *Digraph) OutDegree(i int) int { return len(g.Successors(i)) }

// InDegree counts edges entering i, self-loop included.
func (g *Digraph) InDegree(i int) int { return len(g.Predecessors(i)) }

// HasEdge reports whether i→j exists.
func (g *Digraph) HasEdge(i, j int) bool {
	s := g.Successors(i)
	k := sort.SearchInts(s, j)

	return k < len(s) && s[k] == j
}

// HasSelfLoop reports whether i→i exists.
func (g *Digraph) HasSelfLoop(i int) bool { return g.HasEdge(i, i) }

// Edges lists every edge as [from, to] in ascending (from, to) order.
func (g *Digraph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for i := 0; i < g.n; i++ {
		for _, j := range g.succ[i] {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

func (g *Digraph) valid(i int) bool { return i >= 0 && i < g.n }

// sortUnique sorts s in place and drops duplicates.
func sortUnique(s []int) []int {
	if len(s) < 2 {
		return s
	}
	sort.Ints(s)
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}

	return s[:w]
}
