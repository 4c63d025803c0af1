// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// impl_random.go - RandomDense(n) and RandomSparse(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates).
//   • RandomSparse: 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//
// Determinism:
//   • Trials run row by row, column by column; fixed seed ⇒ fixed matrix.
//
// Complexity: O(n²) draws.

package builder

import "fmt"

const (
	methodRandomDense  = "RandomDense"
	methodRandomSparse = "RandomSparse"

	// minWeight keeps RandomDense entries strictly positive.
	minWeight = 1e-3
)

// RandomDense returns a Constructor whose entries are all strictly positive,
// so the chain is irreducible and aperiodic.
func RandomDense(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if n < minStates {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDense, n, minStates, ErrTooFewStates)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomDense, ErrNeedRandSource)
		}
		rows := zeros(n)
		for i := range rows {
			for j := range rows[i] {
				rows[i][j] = cfg.rng.Float64() + minWeight
			}
		}
		normalizeRows(rows)

		return rows, nil
	}
}

// RandomSparse returns a Constructor that keeps each transition i→j with
// probability p and gives kept transitions random positive weights. A row
// with nothing kept becomes absorbing, so reducible chains with transient
// and recurrent classes come out naturally.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if n < minStates {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minStates, ErrTooFewStates)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		rows := zeros(n)
		for i := range rows {
			for j := range rows[i] {
				if cfg.rng.Float64() < p {
					rows[i][j] = cfg.rng.Float64() + minWeight
				}
			}
			if cfg.selfLoops && rows[i][i] == 0 {
				rows[i][i] = cfg.rng.Float64() + minWeight
			}
		}
		normalizeRows(rows)

		return rows, nil
	}
}
