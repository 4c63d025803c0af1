// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with a call-site
// tag via %w) and tests check them with errors.Is. No algorithm panics on
// user-triggered error conditions; option constructors are the only exception.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> negative entry -> row sum -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Ragged row input ([][]float64 with uneven rows) reports the same sentinel.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeEntry signals an entry strictly below zero where a
	// probability was required.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrRowSumMismatch signals a row whose sum differs from 1 by more than eps.
	// Validators return it wrapped in *RowSumError which carries the row and sum.
	ErrRowSumMismatch = errors.New("matrix: row sum differs from 1 beyond eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a pivot falls below the singularity threshold
	// during LU factorization, solving or inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)

// RowSumError reports the first row of a matrix that is not stochastic.
// errors.Is(err, ErrRowSumMismatch) holds for every *RowSumError.
type RowSumError struct {
	Row int     // zero-based row index
	Sum float64 // observed row sum
	Eps float64 // tolerance that was exceeded
}

// Error implements error.
func (e *RowSumError) Error() string {
	return fmt.Sprintf("matrix: row %d sums to %.17g (|sum-1| > %g)", e.Row, e.Sum, e.Eps)
}

// Unwrap exposes ErrRowSumMismatch to errors.Is.
func (e *RowSumError) Unwrap() error { return ErrRowSumMismatch }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
