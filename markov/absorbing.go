package markov

import (
	"math"

	"github.com/katalvlaran/dtmc/bfs"
)

// AbsorbingStates returns, ascending, every state i with P[i][i] == 1 exactly.
func (c *Chain) AbsorbingStates() []int {
	var out []int
	var v float64
	for i := 0; i < c.N(); i++ {
		if v, _ = c.p.At(i, i); v == 1 {
			out = append(out, i)
		}
	}

	return out
}

// AbsorbingStatesTol is the tolerant variant of AbsorbingStates:
// |P[i][i] − 1| ≤ eps. With eps = 0 it equals AbsorbingStates.
func (c *Chain) AbsorbingStatesTol(eps float64) []int {
	var out []int
	var v float64
	for i := 0; i < c.N(); i++ {
		if v, _ = c.p.At(i, i); math.Abs(v-1) <= eps {
			out = append(out, i)
		}
	}

	return out
}

// IsAbsorbing reports whether the chain as a whole is absorbing: every weakly
// connected component of the transition graph contains a state whose
// out-degree, self-loop excluded, is zero.
//
// Having absorbing states is not enough; a component that never reaches one
// (a closed cycle, say) makes the chain non-absorbing.
//
// Complexity: O(V + E).
func (c *Chain) IsAbsorbing() bool {
	g := c.analysis().graph
	for _, comp := range bfs.WeaklyConnected(g) {
		found := false
		for _, v := range comp {
			out := g.OutDegree(v)
			if g.HasSelfLoop(v) {
				out--
			}
			if out == 0 {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
