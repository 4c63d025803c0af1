// Package dfs implements depth-first algorithms on core.Digraph.
//
// Key features:
//   - StronglyConnected(g): Tarjan's single-pass strongly connected components
//   - Condense(g, comps): the component DAG, used to tell closed (sink)
//     components from open ones
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the recursion stack, lowlink and index tables.
//
// Determinism:
//
//   - Roots are tried in ascending vertex order and successors are visited in
//     ascending order, so the discovered components are reproducible. The
//     public result is additionally normalized: each component is sorted and
//     components are listed by their smallest vertex.
package dfs
