package markov

import (
	"errors"

	"github.com/katalvlaran/dtmc/matrix"
)

// errNotSubstochastic is wrapped into SingularBlock when Q fails the
// substochastic check.
var errNotSubstochastic = errors.New("markov: transient block is not substochastic")

const (
	opFundamental = "FundamentalMatrix"
	opSteps       = "ExpectedStepsToAbsorption"
	opAbsorption  = "AbsorptionProbabilities"
)

// blocks returns the transient and recurrent state lists of a canonical
// chain, or a *ComputationError.
func (c *Chain) blocks(op string) (transient, recurrent []int, err error) {
	if !c.IsCanonical() {
		return nil, nil, &ComputationError{Kind: NotCanonical, Op: op}
	}
	transient, recurrent = c.TransientStates(), c.RecurrentStates()
	if len(transient) == 0 || len(recurrent) == 0 {
		return nil, nil, &ComputationError{Kind: EmptyPartition, Op: op}
	}

	return transient, recurrent, nil
}

// FundamentalMatrix returns N = (I − Q)⁻¹ where Q = P[T, T] is the
// transient-to-transient block. N[i][j] is the expected number of visits to
// transient state j before absorption, starting from transient state i.
//
// Implementation:
//   - Stage 1: require canonical form (transient states are 0..t-1) and
//     non-empty transient and recurrent sets.
//   - Stage 2: Q = P[0:t, 0:t]; Q must be substochastic.
//   - Stage 3: N = (I − Q)⁻¹ by pivoted LU, one solve per column.
//
// Errors (*ComputationError):
//   - NotCanonical: call CanonicalForm first.
//   - EmptyPartition: no transient or no recurrent states.
//   - SingularBlock: Q not substochastic or I − Q numerically singular.
//     A transient class whose total leak is at most ε lands here: the
//     classifier calls it transient, but Q has no row sum below 1 − ε.
//
// Complexity: O(t³).
func (c *Chain) FundamentalMatrix() (*matrix.Dense, error) {
	transient, _, err := c.blocks(opFundamental)
	if err != nil {
		return nil, err
	}

	return c.fundamental(opFundamental, transient)
}

func (c *Chain) fundamental(op string, transient []int) (*matrix.Dense, error) {
	q, err := c.p.Induced(transient, transient)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: op, Err: err}
	}
	if !matrix.IsSubstochastic(q, c.eps) {
		return nil, &ComputationError{Kind: SingularBlock, Op: op, Err: errNotSubstochastic}
	}
	id, err := matrix.NewIdentity(len(transient))
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: op, Err: err}
	}
	iq, err := matrix.Sub(id, q)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: op, Err: err}
	}
	n, err := matrix.Inverse(iq, c.opts...)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: op, Err: err}
	}

	return n, nil
}

// ExpectedStepsToAbsorption returns t = N·1: t[i] is the expected number of
// steps before entering a recurrent class, starting from transient state i.
// Same preconditions and errors as FundamentalMatrix.
func (c *Chain) ExpectedStepsToAbsorption() ([]float64, error) {
	transient, _, err := c.blocks(opSteps)
	if err != nil {
		return nil, err
	}
	n, err := c.fundamental(opSteps, transient)
	if err != nil {
		return nil, err
	}
	ones := make([]float64, len(transient))
	for i := range ones {
		ones[i] = 1
	}
	t, err := matrix.MatVec(n, ones)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: opSteps, Err: err}
	}

	return t, nil
}

// AbsorptionProbabilities returns B = N·R, where R = P[T, R] is the
// transient-to-recurrent block. B[i][k] is the probability that the chain,
// started in transient state i, first enters the recurrent states at
// recurrent state k (column k is state t+k of the canonical chain).
// Same preconditions and errors as FundamentalMatrix.
func (c *Chain) AbsorptionProbabilities() (*matrix.Dense, error) {
	transient, recurrent, err := c.blocks(opAbsorption)
	if err != nil {
		return nil, err
	}
	n, err := c.fundamental(opAbsorption, transient)
	if err != nil {
		return nil, err
	}
	r, err := c.p.Induced(transient, recurrent)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: opAbsorption, Err: err}
	}
	b, err := matrix.Mul(n, r)
	if err != nil {
		return nil, &ComputationError{Kind: SingularBlock, Op: opAbsorption, Err: err}
	}

	return b, nil
}
