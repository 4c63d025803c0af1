// Package bfs provides breadth-first search over a core.Digraph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the reachability and weak-connectivity queries built on it.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dtmc/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Digraph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E).
func BFS(g *core.Digraph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Order() {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Successors(id) {
			if !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, next, id)
			}
		}
	}

	return nil
}

// Reachable returns every vertex reachable from start via directed edges,
// start included, in ascending order. Out-of-range start yields nil.
// Complexity: O(V + E).
func Reachable(g *core.Digraph, start int, opts ...Option) []int {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil
	}
	out := append([]int(nil), res.Order...)
	sort.Ints(out)

	return out
}

// WeaklyConnected partitions the vertices under the undirected closure of the
// edge set. Components are sorted internally and listed by smallest member.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func WeaklyConnected(g *core.Digraph) [][]int {
	if g == nil {
		return nil
	}
	n := g.Order()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS over both edge directions to collect the component.
		queue := []int{s}
		seen[s] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, adj := range [2][]int{g.Successors(u), g.Predecessors(u)} {
				for _, v := range adj {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
