package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dtmc/matrix"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("markov: invalid transition matrix")

	// ErrComputation is matched by every *ComputationError.
	ErrComputation = errors.New("markov: computation precondition violated")

	// ErrInvalidPermutation indicates a permutation that is not a bijection
	// over the chain's states.
	ErrInvalidPermutation = errors.New("markov: invalid permutation")
)

// ValidationKind names the first check a transition matrix failed.
type ValidationKind int

const (
	// NonSquare: empty input, ragged rows, or rows != cols.
	NonSquare ValidationKind = iota
	// NonFinite: a NaN or ±Inf entry.
	NonFinite
	// NegativeEntry: an entry strictly below zero.
	NegativeEntry
	// RowSumMismatch: a row whose sum differs from 1 by more than ε.
	RowSumMismatch
)

// String implements fmt.Stringer.
func (k ValidationKind) String() string {
	switch k {
	case NonSquare:
		return "NonSquare"
	case NonFinite:
		return "NonFinite"
	case NegativeEntry:
		return "NegativeEntry"
	case RowSumMismatch:
		return "RowSumMismatch"
	default:
		return fmt.Sprintf("ValidationKind(%d)", int(k))
	}
}

// ValidationError reports why a matrix was rejected by New or FromMatrix.
// Row and Sum are meaningful for RowSumMismatch only (Row is -1 otherwise).
type ValidationError struct {
	Kind ValidationKind
	Row  int
	Sum  float64
	Err  error // underlying matrix error
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Kind == RowSumMismatch {
		return fmt.Sprintf("markov: %s: row %d sums to %.17g", e.Kind, e.Row, e.Sum)
	}
	if e.Err != nil {
		return fmt.Sprintf("markov: %s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("markov: %s", e.Kind)
}

// Unwrap exposes the underlying matrix sentinel (matrix.ErrNonSquare, ...).
func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every *ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// newValidationError classifies a matrix construction or validation error.
func newValidationError(err error) *ValidationError {
	ve := &ValidationError{Row: -1, Err: err}
	var rse *matrix.RowSumError
	switch {
	case errors.As(err, &rse):
		ve.Kind, ve.Row, ve.Sum = RowSumMismatch, rse.Row, rse.Sum
	case errors.Is(err, matrix.ErrNaNInf):
		ve.Kind = NonFinite
	case errors.Is(err, matrix.ErrNegativeEntry):
		ve.Kind = NegativeEntry
	default:
		// ErrNonSquare, ErrInvalidDimensions (empty), ErrDimensionMismatch
		// (ragged rows) and ErrNilMatrix all describe a malformed shape.
		ve.Kind = NonSquare
	}

	return ve
}

// ComputationKind names the violated precondition of a computation.
type ComputationKind int

const (
	// SingularBlock: I − Q is numerically singular or Q is not substochastic.
	SingularBlock ComputationKind = iota
	// EmptyPartition: the transient or the recurrent state set is empty.
	EmptyPartition
	// NotCanonical: the chain is not in canonical form.
	NotCanonical
)

// String implements fmt.Stringer.
func (k ComputationKind) String() string {
	switch k {
	case SingularBlock:
		return "SingularBlock"
	case EmptyPartition:
		return "EmptyPartition"
	case NotCanonical:
		return "NotCanonical"
	default:
		return fmt.Sprintf("ComputationKind(%d)", int(k))
	}
}

// ComputationError reports a violated precondition. These indicate a logic
// error in the caller and are not retryable.
type ComputationError struct {
	Kind ComputationKind
	Op   string // operation that failed, e.g. "FundamentalMatrix"
	Err  error  // optional underlying error (matrix.ErrSingular)
}

// Error implements error.
func (e *ComputationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("markov: %s: %s: %v", e.Op, e.Kind, e.Err)
	}

	return fmt.Sprintf("markov: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the underlying error, if any.
func (e *ComputationError) Unwrap() error { return e.Err }

// Is makes every *ComputationError match ErrComputation.
func (e *ComputationError) Is(target error) bool { return target == ErrComputation }
