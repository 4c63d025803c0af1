// Package core provides the immutable, integer-indexed directed graph that
// the traversal packages (bfs, dfs) and the Markov chain analysis run on.
//
// A Digraph G = (V,E) has vertices 0..n-1. For a transition matrix P the
// edge set is derived functionally: i→j ∈ E iff P[i][j] > 0. Self-loops are
// ordinary edges (P[i][i] > 0).
//
// Why a dedicated type instead of a general mutable graph?
//
//   - State indices are dense integers; slices beat maps for V+E traversals.
//   - The graph is a snapshot of a matrix and never changes, so it needs no
//     locks and can be shared between goroutines freely.
//   - Deterministic iteration: Successors and Predecessors are sorted ascending.
//
// Core Methods:
//
//	FromMatrix(m matrix.Matrix) (*Digraph, error) // O(n²)
//	New(n int, edges [][2]int) (*Digraph, error)  // O(V+E log E)
//	Order() int                                   // O(1), |V|
//	Size() int                                    // O(1), |E| incl. loops
//	Successors(i) / Predecessors(i) []int         // O(1), shared read-only slices
//	OutDegree(i) / InDegree(i) int                // O(1)
//	HasEdge(i, j) bool                            // O(log d)
//	HasSelfLoop(i) bool                           // O(log d)
//	Edges() [][2]int                              // O(V+E)
package core
