package markov_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dtmc/markov"
	"github.com/katalvlaran/dtmc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoStateAbsorbing(t *testing.T) {
	c := mustChain(t, [][]float64{{1, 0}, {0.5, 0.5}})

	assert.Equal(t, []int{0}, c.AbsorbingStates())
	assert.True(t, c.IsAbsorbing())
	assert.False(t, c.IsCanonical())
	assert.Equal(t, markov.Permutation{1, 0}, c.CanonicalPermutation())

	cf, p, err := c.CanonicalForm()
	require.NoError(t, err)
	assert.Equal(t, markov.Permutation{1, 0}, p)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0, 1}}, cf.Rows())
	assert.True(t, cf.IsCanonical())

	n, err := cf.FundamentalMatrix()
	require.NoError(t, err)
	assert.Equal(t, 1, n.Rows())
	v, _ := n.At(0, 0)
	assert.InDelta(t, 2.0, v, 1e-12)

	// The receiver is untouched.
	assert.Equal(t, [][]float64{{1, 0}, {0.5, 0.5}}, c.Rows())
}

func TestIsAbsorbing_ComponentWithoutAbsorbingState(t *testing.T) {
	// Component {0,1} cycles forever; {2} is absorbing.
	c := mustChain(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
	assert.Equal(t, []int{2}, c.AbsorbingStates())
	assert.False(t, c.IsAbsorbing())

	assert.False(t, mustChain(t, landOfOz).IsAbsorbing())
	assert.True(t, mustChain(t, randomWalk5).IsAbsorbing())
}

func TestAbsorbingStatesTol(t *testing.T) {
	c := mustChain(t, [][]float64{
		{1 - 1e-12, 1e-12},
		{0, 1},
	})
	assert.Equal(t, []int{1}, c.AbsorbingStates())
	assert.Equal(t, []int{1}, c.AbsorbingStatesTol(0))
	assert.Equal(t, []int{0, 1}, c.AbsorbingStatesTol(1e-9))
}

func TestCanonical_Stable(t *testing.T) {
	// Already canonical: transient 0,1 before absorbing 2.
	c := mustChain(t, [][]float64{
		{0.5, 0.25, 0.25},
		{0.25, 0.5, 0.25},
		{0, 0, 1},
	})
	assert.True(t, c.IsCanonical())
	p := c.CanonicalPermutation()
	assert.True(t, p.IsIdentity())

	cf, _, err := c.CanonicalForm()
	require.NoError(t, err)
	assert.Equal(t, c.Rows(), cf.Rows())
}

func TestCanonical_VacuousWhenNoTransient(t *testing.T) {
	c := mustChain(t, [][]float64{{0, 1}, {1, 0}})
	assert.Empty(t, c.TransientStates())
	assert.True(t, c.IsCanonical())
	assert.Equal(t, markov.Permutation{0, 1}, c.CanonicalPermutation())
}

func TestCanonical_RandomWalk(t *testing.T) {
	c := mustChain(t, randomWalk5)
	p := c.CanonicalPermutation()
	assert.Equal(t, markov.Permutation{1, 2, 3, 0, 4}, p)

	cf, _, err := c.CanonicalForm()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, cf.TransientStates())
	assert.Equal(t, []int{3, 4}, cf.RecurrentStates())
}

// TestCanonical_Random checks that canonical forms of random chains are canonical.
func TestCanonical_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		c := mustChain(t, sparseRandom(rng, 1+rng.Intn(10)))
		cf, p, err := c.CanonicalForm()
		require.NoError(t, err)
		require.NoError(t, p.Validate(c.N()))
		assert.True(t, cf.IsCanonical())
		assert.Len(t, cf.TransientStates(), len(c.TransientStates()))
	}
}

func TestPermute_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(10)
		c := mustChain(t, sparseRandom(rng, n))
		p := markov.Permutation(rng.Perm(n))

		pc, err := c.Permute(p)
		require.NoError(t, err)
		back, err := pc.Permute(p.Inverse())
		require.NoError(t, err)
		assert.True(t, matrix.EqualApprox(c.Matrix(), back.Matrix(), c.Epsilon()))
	}
}

func TestPermute_Entries(t *testing.T) {
	c := mustChain(t, landOfOz)
	p := markov.Permutation{2, 0, 1}
	pc, err := c.Permute(p)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, _ := pc.At(i, j)
			want, _ := c.At(p[i], p[j])
			assert.Equal(t, want, got)
		}
	}
}

func TestPermute_Invalid(t *testing.T) {
	c := mustChain(t, landOfOz)
	for _, p := range []markov.Permutation{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err := c.Permute(p)
		assert.ErrorIs(t, err, markov.ErrInvalidPermutation, "p=%v", p)
	}
}

func TestPermutation(t *testing.T) {
	p := markov.Permutation{2, 0, 1}
	q := p.Inverse()
	assert.Equal(t, markov.Permutation{1, 2, 0}, q)
	for i := range p {
		assert.Equal(t, i, q[p[i]])
	}
	assert.False(t, p.IsIdentity())
	assert.True(t, markov.Identity(4).IsIdentity())
	assert.True(t, markov.Permutation{}.IsIdentity())
	assert.NoError(t, p.Validate(3))
}
