package dfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/dtmc/core"
)

// ErrGraphNil is returned when a nil *core.Digraph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// unvisited marks a vertex not yet assigned a discovery index.
const unvisited = -1

// tarjan encapsulates the state of one Tarjan run.
type tarjan struct {
	graph   *core.Digraph
	index   []int // discovery order per vertex
	lowlink []int // smallest index reachable through the DFS subtree + one back edge
	onStack []bool
	stack   []int
	counter int
	comps   [][]int
}

// StronglyConnected partitions the vertices of g into maximal mutually
// reachable sets using Tarjan's algorithm.
//
// Returns ErrGraphNil for a nil graph. An empty graph yields no components.
// Components are sorted internally and ordered by their smallest vertex.
func StronglyConnected(g *core.Digraph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	t := &tarjan{
		graph:   g,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
		stack:   make([]int, 0, n),
	}
	for i := range t.index {
		t.index[i] = unvisited
	}
	for v := 0; v < n; v++ {
		if t.index[v] == unvisited {
			t.strongConnect(v)
		}
	}

	for _, c := range t.comps {
		sort.Ints(c)
	}
	sort.Slice(t.comps, func(a, b int) bool { return t.comps[a][0] < t.comps[b][0] })

	return t.comps, nil
}

// strongConnect is the recursive core of Tarjan's algorithm.
func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.graph.Successors(v) {
		if t.index[w] == unvisited {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	// v roots a component: pop it off the stack.
	if t.lowlink[v] == t.index[v] {
		var comp []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.comps = append(t.comps, comp)
	}
}

// Condense maps every vertex to its component and reports, per component,
// whether any edge leaves it. comps must partition the vertices of g
// (as returned by StronglyConnected).
//
// Returns componentOf (len V) and open (len(comps)); open[c] is true iff some
// edge u→v has u in comps[c] and v outside it.
// Complexity: O(V + E).
func Condense(g *core.Digraph, comps [][]int) (componentOf []int, open []bool, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	componentOf = make([]int, g.Order())
	for c, comp := range comps {
		for _, v := range comp {
			componentOf[v] = c
		}
	}
	open = make([]bool, len(comps))
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Successors(u) {
			if componentOf[u] != componentOf[v] {
				open[componentOf[u]] = true
			}
		}
	}

	return componentOf, open, nil
}
