package markov

import "fmt"

// IsCanonical reports whether every transient state precedes every recurrent
// state: max(transient) < min(recurrent). It holds vacuously when either set
// is empty.
func (c *Chain) IsCanonical() bool {
	an := c.analysis()
	if len(an.transient) == 0 || len(an.recurrent) == 0 {
		return true
	}

	return an.transient[len(an.transient)-1] < an.recurrent[0]
}

// CanonicalPermutation returns the ordering that puts transient states first.
//
// Behavior highlights:
//   - Stable: an already canonical chain yields the identity.
//   - Otherwise the states of all transient classes, in class order, followed
//     by those of all recurrent classes, in class order.
func (c *Chain) CanonicalPermutation() Permutation {
	if c.IsCanonical() {
		return Identity(c.N())
	}
	an := c.analysis()
	p := make(Permutation, 0, c.N())
	for _, kind := range [2]Kind{Transient, Recurrent} {
		for _, cl := range an.classes {
			if cl.Kind == kind {
				p = append(p, cl.States...)
			}
		}
	}

	return p
}

// Permute returns a new chain with P'[i][j] = P[p[i]][p[j]]. The receiver is
// unchanged. The permuted matrix is re-validated, which always succeeds for
// a valid permutation.
//
// Errors: ErrInvalidPermutation when p is not a bijection over 0..N()-1.
// Complexity: O(n²).
func (c *Chain) Permute(p Permutation) (*Chain, error) {
	if err := p.Validate(c.N()); err != nil {
		return nil, fmt.Errorf("markov: Permute: %w", err)
	}
	m, err := c.p.Permute(p)
	if err != nil {
		return nil, fmt.Errorf("markov: Permute: %w", err)
	}

	return newChain(m, c.opts)
}

// CanonicalForm returns the chain reordered by CanonicalPermutation together
// with that permutation.
func (c *Chain) CanonicalForm() (*Chain, Permutation, error) {
	p := c.CanonicalPermutation()
	cf, err := c.Permute(p)
	if err != nil {
		return nil, nil, err
	}

	return cf, p, nil
}
