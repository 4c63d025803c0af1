package markov

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/dtmc/bfs"
	"github.com/katalvlaran/dtmc/core"
	"github.com/katalvlaran/dtmc/matrix"
)

// Chain is an immutable finite DTMC over states 0..N()-1.
//
// The transition matrix is copied in at construction and never handed out
// by reference. Derived structure (graph, classes, period) is computed on
// first use and cached; the cache never changes observable behavior.
type Chain struct {
	p    *matrix.Dense
	opts []matrix.Option
	eps  float64

	once sync.Once
	an   *analysis
}

// New validates rows as a stochastic matrix and builds a Chain.
//
// Implementation:
//   - Stage 1: copy rows into a dense matrix (empty or ragged → NonSquare,
//     NaN/Inf → NonFinite).
//   - Stage 2: matrix.ValidateStochastic: square → finite → non-negative →
//     row sums within ε (matrix.WithEpsilon, default matrix.DefaultEpsilon).
//
// Construction is atomic: on error the returned chain is nil and the error is
// a *ValidationError.
//
// Complexity: O(n²).
func New(rows [][]float64, opts ...matrix.Option) (*Chain, error) {
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		return nil, newValidationError(err)
	}

	return newChain(m, opts)
}

// FromMatrix builds a Chain from any matrix.Matrix. The data is copied.
func FromMatrix(m matrix.Matrix, opts ...matrix.Option) (*Chain, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, newValidationError(err)
	}
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, newValidationError(err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, newValidationError(err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, newValidationError(err)
			}
		}
	}

	return newChain(d, opts)
}

// newChain validates an owned dense matrix and wraps it.
func newChain(m *matrix.Dense, opts []matrix.Option) (*Chain, error) {
	if err := matrix.ValidateStochastic(m, opts...); err != nil {
		return nil, newValidationError(err)
	}

	return &Chain{
		p:    m,
		opts: append([]matrix.Option(nil), opts...),
		eps:  matrix.NewOptions(opts...).Epsilon(),
	}, nil
}

// N returns the number of states.
func (c *Chain) N() int { return c.p.Rows() }

// Epsilon returns the tolerance the chain was validated with.
func (c *Chain) Epsilon() float64 { return c.eps }

// At returns P[i][j], or an error wrapping matrix.ErrOutOfRange.
func (c *Chain) At(i, j int) (float64, error) { return c.p.At(i, j) }

// Matrix returns a copy of the transition matrix.
func (c *Chain) Matrix() *matrix.Dense { return c.p.Clone().(*matrix.Dense) }

// Rows returns the transition matrix as freshly allocated rows.
func (c *Chain) Rows() [][]float64 { return c.p.ToRows() }

// Graph returns the transition graph (edge i→j iff P[i][j] > 0).
// The graph is immutable and shared between calls.
func (c *Chain) Graph() *core.Digraph { return c.analysis().graph }

// ReachableFrom returns every state reachable from i in zero or more steps,
// i included, in ascending order. Out-of-range i yields nil.
func (c *Chain) ReachableFrom(i int) []int {
	return bfs.Reachable(c.analysis().graph, i)
}

// Restrict returns the sub-chain on the given states, renumbered 0..len-1 in
// the order given. The sub-matrix must itself be stochastic, which holds for
// any union of recurrent classes.
//
// Errors: an out-of-range state wraps matrix.ErrOutOfRange; an empty set or
// a set that leaks probability mass yields a *ValidationError.
func (c *Chain) Restrict(states []int) (*Chain, error) {
	sub, err := c.p.Induced(states, states)
	if err != nil {
		return nil, fmt.Errorf("markov: Restrict: %w", err)
	}

	return newChain(sub, c.opts)
}
