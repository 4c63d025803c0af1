package markov

import (
	"github.com/katalvlaran/dtmc/bfs"
	"github.com/katalvlaran/dtmc/core"
)

// Period returns the gcd of the lengths of all cycles in the transition
// graph. It is evaluated on the whole graph, independent of irreducibility:
// every cycle lies inside one communicating class, so this is the gcd of the
// class periods. A stochastic matrix always has a cycle, so the result is ≥ 1.
func (c *Chain) Period() int { return c.analysis().period }

// Aperiodic reports whether Period() == 1.
func (c *Chain) Aperiodic() bool { return c.analysis().period == 1 }

// classPeriods fills classes[k].Period and returns their gcd.
//
// Implementation:
//   - BFS from the first state of each class, restricted to the class, gives
//     levels lv. For every intra-class edge u→v, lv[u]+1−lv[v] is a
//     difference of two walk lengths from the root to v; the gcd of these
//     values over all edges is the class period.
//
// Complexity: O(V + E).
func classPeriods(g *core.Digraph, classes []Class, componentOf []int) int {
	total := 0
	for k := range classes {
		states := classes[k].States
		if len(states) == 1 && !g.HasSelfLoop(states[0]) {
			continue
		}
		kk := k
		res, err := bfs.BFS(g, states[0], bfs.WithFilterNeighbor(func(_, nbr int) bool {
			return componentOf[nbr] == kk
		}))
		if err != nil {
			continue
		}
		p := 0
		for _, u := range states {
			for _, v := range g.Successors(u) {
				if componentOf[v] == k {
					p = gcd(p, res.Depth[u]+1-res.Depth[v])
				}
			}
		}
		classes[k].Period = p
		total = gcd(total, p)
	}

	return total
}

// gcd returns the non-negative greatest common divisor; gcd(0, x) = |x|.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
