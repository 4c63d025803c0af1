// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: randomness comes only from WithSeed/WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating builderConfig before it runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStepProbability sets the probability p of stepping right (i → i+1) in
// RandomWalk; the walk steps left with 1−p. Panics unless 0 ≤ p ≤ 1.
func WithStepProbability(p float64) BuilderOption {
	if p < probMin || p > probMax || math.IsNaN(p) {
		panic(fmt.Sprintf("builder: WithStepProbability(%v) not in [0,1]", p))
	}
	return func(c *builderConfig) {
		c.stepP = p
	}
}

// WithSelfLoops makes RandomSparse guarantee a self-loop on every state,
// which makes every class aperiodic.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = true
	}
}
