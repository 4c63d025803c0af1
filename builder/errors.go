// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("RandomWalk: n=1 < min=2: ...").
//   • Constructors never panic; option constructors do on meaningless input.
//
// Priority when several validations fail:
//   ErrTooFewStates → ErrInvalidProbability → ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewStates indicates a state count below the constructor's minimum.
var ErrTooFewStates = errors.New("builder: too few states")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownModel indicates ByName received a model name it does not know.
var ErrUnknownModel = errors.New("builder: unknown model")
