// SPDX-License-Identifier: MIT
// Package builder provides deterministic generators of transition matrices
// for fixtures, examples and the dtmc command.
//
// Generators are producers only: they emit a row-stochastic [][]float64 and
// know nothing about analysis. Feed the result to markov.New, or use
// BuildChain to do both in one call.
//
// Catalogue:
//
//   - RandomWalk(n)     walk on a path 0..n-1 with absorbing ends
//     (gambler's ruin); WithStepProbability biases it.
//   - Ehrenfest(n)      urn model over 0..n balls; irreducible, period 2.
//   - Cycle(n)          deterministic rotation i → i+1 mod n; period n.
//   - Complete(n)       uniform jumps to every state, self included.
//   - StockMarket()     bull / bear / stagnant market, 3 states.
//   - SimpleWeather()   sunny / rainy, 2 states.
//   - LandOfOz()        rain / nice / snow, 3 states.
//   - RandomDense(n)    every entry positive, rows normalized; needs an RNG.
//   - RandomSparse(n,p) each transition kept with probability p; needs an RNG.
//
// Determinism:
//
//	The same constructor, parameters and seed always produce the same matrix.
//	Stochastic generators never fall back to a global source: without
//	WithSeed or WithRand they fail with ErrNeedRandSource.
//
// Errors:
//
//	ErrTooFewStates, ErrInvalidProbability, ErrNeedRandSource and
//	ErrUnknownModel, wrapped with the constructor name.
package builder
