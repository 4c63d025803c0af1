// Package markov analyzes finite discrete-time Markov chains (DTMCs).
//
// A Chain is built once from an n×n transition matrix P and validated
// atomically: squareness, finiteness, non-negativity and row sums within ε.
// Every analysis afterwards is a pure function of P:
//
//   - Structure: CommunicatingClasses (Tarjan SCC over the transition graph
//     i→j iff P[i][j] > 0), RecurrentClasses / TransientClasses,
//     Irreducible, Period / Aperiodic.
//   - Absorption: AbsorbingStates (P[i][i] == 1), IsAbsorbing (every weakly
//     connected component can be absorbed), FundamentalMatrix N = (I − Q)⁻¹,
//     ExpectedStepsToAbsorption, AbsorptionProbabilities.
//   - Ordering: IsCanonical, CanonicalPermutation, Permute, CanonicalForm.
//   - Steady state: StationaryDistribution (least squares on
//     [Pᵀ − I; 1ᵀ]·π = [0; 1]) and StationaryDistributions (one per
//     recurrent class).
//
// Quick start:
//
//	c, err := markov.New([][]float64{
//		{1, 0},
//		{0.5, 0.5},
//	})
//	if err != nil {
//		// *markov.ValidationError
//	}
//	cf, perm, _ := c.CanonicalForm() // perm == [1 0]
//	n, _ := cf.FundamentalMatrix()   // [[2]]
//
// Errors:
//
//   - *ValidationError (errors.Is(err, ErrValidation)) at construction.
//   - *ComputationError (errors.Is(err, ErrComputation)) when a precondition
//     of the fundamental-matrix computation is violated.
//   - ErrInvalidPermutation from Permute.
//
// Concurrency:
//
//	A Chain is immutable. The graph and class decomposition are derived
//	lazily once (sync.Once) and then shared, so a Chain may be read from any
//	number of goroutines without further synchronization.
//
// Complexity:
//
//	Graph work is O(V + E). StationaryDistribution and FundamentalMatrix are
//	dense O(n³) solves.
package markov
