package markov

import "fmt"

// Permutation is a bijection over 0..n-1. Applied to a chain, new state i is
// old state p[i].
type Permutation []int

// Identity returns the identity permutation of length n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate checks that p is a bijection over 0..n-1.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPermutation, len(p), n)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: p[%d] = %d out of range", ErrInvalidPermutation, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d repeated", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// Inverse returns q with q[p[i]] = i. p must be valid.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// IsIdentity reports whether p[i] == i for all i.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}
