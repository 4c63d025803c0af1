package markov

import (
	"fmt"

	"github.com/katalvlaran/dtmc/matrix"
)

// StationaryDistribution solves π·P = π, Σπ = 1 in the least-squares sense.
//
// Implementation:
//   - Stage 1: A = Pᵀ − I. Every column of A sums to zero, so A has rank at
//     most n−1.
//   - Stage 2: append a row of ones to A and set b = (0, …, 0, 1).
//   - Stage 3: solve the (n+1)×n system with matrix.LeastSquares
//     (column-pivoted Householder QR).
//
// Behavior highlights:
//   - Irreducible chains have a unique stationary distribution, which this
//     returns up to rounding.
//   - Reducible chains with several recurrent classes make the system rank
//     deficient; the result is the basic least-squares solution, which is a
//     constrained fit and not in general a probability distribution. Use
//     StationaryDistributions for those.
//
// Complexity: O(n³).
func (c *Chain) StationaryDistribution() ([]float64, error) {
	n := c.N()
	pt, err := matrix.Transpose(c.p)
	if err != nil {
		return nil, fmt.Errorf("markov: StationaryDistribution: %w", err)
	}
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("markov: StationaryDistribution: %w", err)
	}
	a, err := matrix.Sub(pt, id)
	if err != nil {
		return nil, fmt.Errorf("markov: StationaryDistribution: %w", err)
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	if a, err = matrix.AppendRow(a, ones); err != nil {
		return nil, fmt.Errorf("markov: StationaryDistribution: %w", err)
	}
	b := make([]float64, n+1)
	b[n] = 1

	pi, _, err := matrix.LeastSquares(a, b, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("markov: StationaryDistribution: %w", err)
	}

	return pi, nil
}

// StationaryDistributions returns one stationary distribution per recurrent
// class, in RecurrentClasses order. Each has length N(), is zero outside its
// class and is solved on the sub-chain restricted to the class, where it is
// unique. Every stationary distribution of the chain is a convex combination
// of these.
func (c *Chain) StationaryDistributions() ([][]float64, error) {
	classes := c.RecurrentClasses()
	out := make([][]float64, 0, len(classes))
	for _, cl := range classes {
		sub, err := c.Restrict(cl.States)
		if err != nil {
			return nil, fmt.Errorf("markov: StationaryDistributions: %w", err)
		}
		local, err := sub.StationaryDistribution()
		if err != nil {
			return nil, fmt.Errorf("markov: StationaryDistributions: %w", err)
		}
		pi := make([]float64, c.N())
		for k, s := range cl.States {
			pi[s] = local[k]
		}
		out = append(out, pi)
	}

	return out, nil
}
