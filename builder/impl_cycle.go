// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// impl_cycle.go - Cycle(n) and Complete(n).
//
// Cycle contract:
//   • n ≥ 1 (else ErrTooFewStates); P[i][(i+1) mod n] = 1.
//   • Irreducible with period n; Cycle(1) is the single absorbing state.
//
// Complete contract:
//   • n ≥ 1 (else ErrTooFewStates); every entry 1/n.

package builder

import "fmt"

const (
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	minStates      = 1
)

// Cycle returns a Constructor for the deterministic rotation on n states.
func Cycle(n int) Constructor {
	return func(builderConfig) ([][]float64, error) {
		if n < minStates {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minStates, ErrTooFewStates)
		}
		rows := zeros(n)
		for i := 0; i < n; i++ {
			rows[i][(i+1)%n] = 1
		}

		return rows, nil
	}
}

// Complete returns a Constructor for uniform jumps over n states.
func Complete(n int) Constructor {
	return func(builderConfig) ([][]float64, error) {
		if n < minStates {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minStates, ErrTooFewStates)
		}
		rows := zeros(n)
		w := 1 / float64(n)
		for i := range rows {
			for j := range rows[i] {
				rows[i][j] = w
			}
		}

		return rows, nil
	}
}
