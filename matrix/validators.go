// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for stochastic-matrix checks.
//   - Keep kernels minimal by delegating nil/shape/sign/row-sum checks here.
//   - Return sentinel errors (or *RowSumError) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, allocate nothing and stop at the
//     first violation in row-major order.
//
// Note:
//   - ValidateStochastic follows a fixed sequence:
//     NotNil → Square → Finite → NonNegative → RowStochastic.
//     Squareness comes first because the row-sum check assumes a well-formed
//     square matrix.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() == 0 || m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateNonNegative reports the first entry strictly below zero.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return validatorErrorf("ValidateNonNegative", denseErrorf(ctxAt, i, j, ErrNegativeEntry))
			}
		}
	}

	return nil
}

// ValidateRowStochastic checks |Σ_j m[i,j] − 1| ≤ eps for every row i.
// The first failing row is returned as *RowSumError (matches ErrRowSumMismatch).
// Complexity: O(r*c).
func ValidateRowStochastic(m Matrix, eps float64) error {
	var i int
	var s float64
	for i = 0; i < m.Rows(); i++ {
		s = rowSum(m, i)
		if math.IsNaN(s) || math.Abs(s-1) > eps {
			return validatorErrorf("ValidateRowStochastic", &RowSumError{Row: i, Sum: s, Eps: eps})
		}
	}

	return nil
}

// ValidateStochastic is the composite check for transition matrices:
// NotNil → Square → Finite → NonNegative → RowStochastic(eps from opts).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeEntry, *RowSumError.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func ValidateStochastic(m Matrix, opts ...Option) error {
	o := NewOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if err := ValidateRowStochastic(m, o.eps); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}

	return nil
}

// IsSubstochastic reports whether m is non-negative with every row sum ≤ 1+eps
// and at least one row sum < 1−eps. An empty matrix is not substochastic.
// Complexity: O(r*c).
func IsSubstochastic(m Matrix, eps float64) bool {
	if m == nil || m.Rows() == 0 {
		return false
	}
	if ValidateNonNegative(m) != nil {
		return false
	}
	deficient := false
	var s float64
	for i := 0; i < m.Rows(); i++ {
		s = rowSum(m, i)
		if math.IsNaN(s) || s > 1+eps {
			return false
		}
		if s < 1-eps {
			deficient = true
		}
	}

	return deficient
}

// rowSum returns Σ_j m[i,j]; i must be in range.
func rowSum(m Matrix, i int) float64 {
	if d, ok := m.(*Dense); ok {
		var s float64
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			s += v
		}
		return s
	}
	var s, v float64
	for j := 0; j < m.Cols(); j++ {
		v, _ = m.At(i, j)
		s += v
	}

	return s
}
