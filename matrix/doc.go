// Package matrix offers the dense numeric layer used by the Markov chain analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors,
//     copy-based submatrix extraction (Induced) and symmetric permutation
//     (Permute).
//   - Stochastic validators: squareness, non-negativity, row sums within a
//     tolerance, and the substochastic predicate used for transient blocks.
//   - Linear algebra kernels: Transpose, Sub, Mul, MatVec, partially pivoted
//     LU with Solve and Inverse, and a column-pivoted Householder least-squares
//     solver for overdetermined or rank-deficient systems.
//
// All kernels are deterministic (fixed loop orders, no map iteration) and
// never mutate their inputs. Errors are package sentinels; match them with
// errors.Is. Tolerances are explicit: every comparison that needs one takes it
// from Options (see WithEpsilon) or as an argument.
//
// Matrices here are dense. Memory is O(n²) and the factorizations are O(n³);
// budget accordingly for large state spaces.
package matrix
