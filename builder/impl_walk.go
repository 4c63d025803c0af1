// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// impl_walk.go - RandomWalk(n) and Ehrenfest(n).
//
// RandomWalk contract:
//   • n ≥ 2 (else ErrTooFewStates).
//   • States 0 and n-1 are absorbing; interior state i moves to i+1 with
//     cfg.stepP and to i-1 with 1−stepP.
//   • n == 2 yields the 2×2 identity (two absorbing states, no interior).
//
// Ehrenfest contract:
//   • n ≥ 1 balls (else ErrTooFewStates); n+1 states 0..n.
//   • P[i][i-1] = i/n, P[i][i+1] = (n−i)/n.
//
// Complexity: O(n²) to allocate, O(n) to fill.

package builder

import "fmt"

const (
	methodRandomWalk = "RandomWalk"
	minWalkStates    = 2

	methodEhrenfest = "Ehrenfest"
	minEhrenfest    = 1
)

// RandomWalk returns a Constructor for the walk on a path with absorbing ends.
func RandomWalk(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if n < minWalkStates {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomWalk, n, minWalkStates, ErrTooFewStates)
		}
		rows := zeros(n)
		rows[0][0] = 1
		rows[n-1][n-1] = 1
		for i := 1; i < n-1; i++ {
			rows[i][i+1] = cfg.stepP
			rows[i][i-1] = 1 - cfg.stepP
		}

		return rows, nil
	}
}

// Ehrenfest returns a Constructor for the Ehrenfest urn with n balls.
// State i is the number of balls in the first urn.
func Ehrenfest(n int) Constructor {
	return func(builderConfig) ([][]float64, error) {
		if n < minEhrenfest {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodEhrenfest, n, minEhrenfest, ErrTooFewStates)
		}
		rows := zeros(n + 1)
		nf := float64(n)
		for i := 0; i <= n; i++ {
			if i > 0 {
				rows[i][i-1] = float64(i) / nf
			}
			if i < n {
				rows[i][i+1] = float64(n-i) / nf
			}
		}

		return rows, nil
	}
}
