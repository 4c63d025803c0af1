// Package dtmc is a toolkit for analyzing finite discrete-time Markov chains.
//
// A chain is a square row-stochastic transition matrix. The library answers
// the structural and numerical questions usually asked about one:
//
//   - Validation: shape, finiteness, sign and row sums within a tolerance
//   - Structure: communicating classes, recurrent and transient states, period
//   - Absorption: absorbing states, absorbing chains, canonical form
//   - Long run: stationary distributions (global and per recurrent class)
//   - Absorbing analysis: fundamental matrix, expected steps, absorption probabilities
//
// Layout:
//
//	matrix/   dense row-major storage, stochastic validators, LU and least squares
//	core/     immutable directed graph of positive transitions
//	bfs/      breadth-first search, reachability and weak components
//	dfs/      Tarjan strongly connected components and condensation
//	markov/   the Chain type and every analysis built on it
//	builder/  deterministic and seeded generators for well-known chains
//	render/   Graphviz DOT export and SVG rendering
//	cmd/dtmc  command-line front end (analyze, stationary, fundamental, canonical, dot, generate)
//
// Quick start:
//
//	c, err := markov.New([][]float64{
//		{1, 0, 0},
//		{0.5, 0, 0.5},
//		{0, 0, 1},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	cf, perm, _ := c.CanonicalForm()
//	n, _ := cf.FundamentalMatrix()
//	fmt.Println(perm, n)
package dtmc
