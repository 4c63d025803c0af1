// Package builder_test verifies every generator emits a valid transition
// matrix with the documented structure.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dtmc/builder"
	"github.com/katalvlaran/dtmc/markov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional checks shape and chain-level structure per generator.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		con   builder.Constructor
		opts  []builder.BuilderOption
		wantN int
		check func(t *testing.T, c *markov.Chain)
	}{
		{
			name: "RandomWalk(5)", con: builder.RandomWalk(5), wantN: 5,
			check: func(t *testing.T, c *markov.Chain) {
				assert.Equal(t, []int{0, 4}, c.AbsorbingStates())
				assert.Equal(t, []int{1, 2, 3}, c.TransientStates())
				assert.True(t, c.IsAbsorbing())
			},
		},
		{
			name: "RandomWalk(2)", con: builder.RandomWalk(2), wantN: 2,
			check: func(t *testing.T, c *markov.Chain) {
				assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, c.Rows())
			},
		},
		{
			name: "RandomWalk biased", con: builder.RandomWalk(4),
			opts: []builder.BuilderOption{builder.WithStepProbability(0.9)}, wantN: 4,
			check: func(t *testing.T, c *markov.Chain) {
				v, _ := c.At(1, 2)
				assert.Equal(t, 0.9, v)
				v, _ = c.At(1, 0)
				assert.InDelta(t, 0.1, v, 1e-15)
			},
		},
		{
			name: "Ehrenfest(4)", con: builder.Ehrenfest(4), wantN: 5,
			check: func(t *testing.T, c *markov.Chain) {
				assert.True(t, c.Irreducible())
				assert.Equal(t, 2, c.Period())
			},
		},
		{
			name: "Cycle(4)", con: builder.Cycle(4), wantN: 4,
			check: func(t *testing.T, c *markov.Chain) {
				assert.True(t, c.Irreducible())
				assert.Equal(t, 4, c.Period())
			},
		},
		{
			name: "Cycle(1)", con: builder.Cycle(1), wantN: 1,
			check: func(t *testing.T, c *markov.Chain) {
				assert.Equal(t, []int{0}, c.AbsorbingStates())
			},
		},
		{
			name: "Complete(3)", con: builder.Complete(3), wantN: 3,
			check: func(t *testing.T, c *markov.Chain) {
				assert.True(t, c.Aperiodic())
				pi, err := c.StationaryDistribution()
				require.NoError(t, err)
				assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, pi, 1e-12)
			},
		},
		{
			name: "StockMarket", con: builder.StockMarket(), wantN: 3,
			check: func(t *testing.T, c *markov.Chain) {
				pi, err := c.StationaryDistribution()
				require.NoError(t, err)
				assert.InDeltaSlice(t, []float64{0.625, 0.3125, 0.0625}, pi, 1e-9)
			},
		},
		{
			name: "SimpleWeather", con: builder.SimpleWeather(), wantN: 2,
			check: func(t *testing.T, c *markov.Chain) { assert.True(t, c.Irreducible()) },
		},
		{
			name: "LandOfOz", con: builder.LandOfOz(), wantN: 3,
			check: func(t *testing.T, c *markov.Chain) {
				v, _ := c.At(1, 1)
				assert.Zero(t, v, "never two nice days in a row")
			},
		},
		{
			name: "RandomDense(6)", con: builder.RandomDense(6),
			opts: []builder.BuilderOption{builder.WithSeed(1)}, wantN: 6,
			check: func(t *testing.T, c *markov.Chain) {
				assert.True(t, c.Irreducible())
				assert.True(t, c.Aperiodic())
				assert.Equal(t, 36, c.Graph().Size())
			},
		},
		{
			name: "RandomSparse self loops", con: builder.RandomSparse(8, 0.2),
			opts: []builder.BuilderOption{builder.WithSeed(5), builder.WithSelfLoops()}, wantN: 8,
			check: func(t *testing.T, c *markov.Chain) {
				for i := 0; i < c.N(); i++ {
					assert.True(t, c.Graph().HasSelfLoop(i))
				}
				assert.True(t, c.Aperiodic())
			},
		},
		{
			name: "RandomSparse p=0", con: builder.RandomSparse(3, 0),
			opts: []builder.BuilderOption{builder.WithSeed(5)}, wantN: 3,
			check: func(t *testing.T, c *markov.Chain) {
				assert.Equal(t, []int{0, 1, 2}, c.AbsorbingStates())
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.BuildChain(tc.con, tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.wantN, c.N())
			tc.check(t, c)
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"walk too small", builder.RandomWalk(1), nil, builder.ErrTooFewStates},
		{"ehrenfest zero", builder.Ehrenfest(0), nil, builder.ErrTooFewStates},
		{"cycle zero", builder.Cycle(0), nil, builder.ErrTooFewStates},
		{"complete negative", builder.Complete(-1), nil, builder.ErrTooFewStates},
		{"dense no rng", builder.RandomDense(3), nil, builder.ErrNeedRandSource},
		{"sparse bad p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"size before probability", builder.RandomSparse(0, -1), nil, builder.ErrTooFewStates},
		{"nil constructor", nil, nil, builder.ErrUnknownModel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.con, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_Deterministic locks outcomes to the seed.
func TestBuilders_Deterministic(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(10, 0.4), builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(10, 0.4), builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Build(builder.RandomSparse(10, 0.4), builder.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestBuilders_FixedAreCopies(t *testing.T) {
	a, err := builder.Build(builder.LandOfOz())
	require.NoError(t, err)
	a[0][0] = 42
	b, err := builder.Build(builder.LandOfOz())
	require.NoError(t, err)
	assert.Equal(t, 0.5, b[0][0])
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithStepProbability(-0.1) })
	assert.Panics(t, func() { builder.WithStepProbability(1.1) })
	assert.NotPanics(t, func() { builder.WithStepProbability(1) })
}

func TestByName(t *testing.T) {
	names := builder.Models()
	assert.Contains(t, names, "walk")
	assert.Contains(t, names, "oz")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		con, err := builder.ByName(name, 4)
		require.NoError(t, err, name)
		_, err = builder.BuildChain(con, []builder.BuilderOption{builder.WithSeed(1)})
		require.NoError(t, err, name)
	}

	_, err := builder.ByName("nope", 3)
	assert.ErrorIs(t, err, builder.ErrUnknownModel)
}
