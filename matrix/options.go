// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions, the resolver other packages use to read the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Tolerances are threaded explicitly; nothing compares floats against a
//     hidden literal.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used for row-sum and equality checks.
	DefaultEpsilon = 1e-10

	// DefaultPivotTol is the relative threshold below which a pivot is treated
	// as zero. It is scaled by the max-abs entry of the factorized matrix.
	DefaultPivotTol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTol: tol must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	pivotTol       float64 // >= 0; DefaultPivotTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by stochasticity and equality checks.
// Panics when eps is negative, NaN or ±Inf.
//
// AI-Hints:
//   - Hand-entered textbook matrices with 1/3-style entries validate fine at
//     the default; matrices parsed from decimal text may need ~1e-6.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTol sets the relative pivot threshold used by LU and least squares.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithNoValidateNaNInf disables finite-value enforcement in Set.
// Intended for controlled experiments only.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewOptions resolves opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotTol returns the effective relative pivot threshold.
func (o Options) PivotTol() float64 { return o.pivotTol }

// ValidateNaNInf reports whether finite-value enforcement is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
