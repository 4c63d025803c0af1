package markov

import (
	"github.com/katalvlaran/dtmc/core"
	"github.com/katalvlaran/dtmc/dfs"
)

// Kind classifies a communicating class.
type Kind int

const (
	// Transient classes have an edge leaving the class.
	Transient Kind = iota
	// Recurrent classes are closed: nothing outside is reachable.
	Recurrent
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Recurrent {
		return "recurrent"
	}

	return "transient"
}

// Class is one communicating class: a maximal set of mutually reachable
// states, sorted ascending, with its classification and period.
//
// Period is the gcd of cycle lengths inside the class, or 0 when the class is
// a single state without a self-loop (no cycle at all).
type Class struct {
	States []int
	Kind   Kind
	Period int
}

// analysis is the cached structural decomposition of a chain.
type analysis struct {
	graph       *core.Digraph
	classes     []Class // ordered by smallest member
	componentOf []int
	transient   []int // ascending
	recurrent   []int // ascending
	period      int
}

// analysis computes the decomposition once.
//
// Implementation:
//   - Stage 1: transition graph from P (edge iff P[i][j] > 0).
//   - Stage 2: Tarjan SCC → communicating classes.
//   - Stage 3: a class C is recurrent iff the union of states reachable from
//     C equals C. Since C is strongly connected this is the same as "no edge
//     leaves C", read off the condensation in O(V + E).
//   - Stage 4: per-class and chain period.
func (c *Chain) analysis() *analysis {
	c.once.Do(func() {
		// Both calls fail only on nil/non-square input, which New rules out.
		g, _ := core.FromMatrix(c.p)
		comps, _ := dfs.StronglyConnected(g)
		componentOf, open, _ := dfs.Condense(g, comps)

		an := &analysis{
			graph:       g,
			classes:     make([]Class, len(comps)),
			componentOf: componentOf,
		}
		for k, comp := range comps {
			an.classes[k] = Class{States: comp, Kind: Recurrent}
			if open[k] {
				an.classes[k].Kind = Transient
			}
		}
		for s := 0; s < g.Order(); s++ {
			if an.classes[componentOf[s]].Kind == Recurrent {
				an.recurrent = append(an.recurrent, s)
			} else {
				an.transient = append(an.transient, s)
			}
		}
		an.period = classPeriods(g, an.classes, componentOf)
		c.an = an
	})

	return c.an
}

// CommunicatingClasses returns the partition of states into communicating
// classes, each sorted, ordered by smallest member.
func (c *Chain) CommunicatingClasses() []Class {
	return cloneClasses(c.analysis().classes, func(Class) bool { return true })
}

// RecurrentClasses returns the closed communicating classes.
func (c *Chain) RecurrentClasses() []Class {
	return cloneClasses(c.analysis().classes, func(cl Class) bool { return cl.Kind == Recurrent })
}

// TransientClasses returns the communicating classes with an exit.
func (c *Chain) TransientClasses() []Class {
	return cloneClasses(c.analysis().classes, func(cl Class) bool { return cl.Kind == Transient })
}

// RecurrentStates returns every state in a recurrent class, ascending.
func (c *Chain) RecurrentStates() []int { return append([]int{}, c.analysis().recurrent...) }

// TransientStates returns every state in a transient class, ascending.
// RecurrentStates and TransientStates partition 0..N()-1.
func (c *Chain) TransientStates() []int { return append([]int{}, c.analysis().transient...) }

// Irreducible reports whether a single communicating class covers every state.
func (c *Chain) Irreducible() bool { return len(c.analysis().classes) == 1 }

// ClassOf returns the index into CommunicatingClasses of the class holding s,
// or -1 when s is out of range.
func (c *Chain) ClassOf(s int) int {
	an := c.analysis()
	if s < 0 || s >= len(an.componentOf) {
		return -1
	}

	return an.componentOf[s]
}

func cloneClasses(src []Class, keep func(Class) bool) []Class {
	out := make([]Class, 0, len(src))
	for _, cl := range src {
		if keep(cl) {
			out = append(out, Class{States: append([]int(nil), cl.States...), Kind: cl.Kind, Period: cl.Period})
		}
	}

	return out
}
