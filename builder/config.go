// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (generators needing randomness fail fast)
//   • stepP     = 0.5   (symmetric random walk)
//   • selfLoops = false

package builder

import "math/rand"

// Named defaults and domains.
const (
	// DefaultStepProbability is the right-step probability of RandomWalk.
	DefaultStepProbability = 0.5

	probMin = 0.0
	probMax = 1.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value.
type builderConfig struct {
	rng       *rand.Rand
	stepP     float64
	selfLoops bool
}

// newBuilderConfig applies opts over the defaults in order (last wins).
// Nil options are skipped.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		stepP: DefaultStepProbability,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
