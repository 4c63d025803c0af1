package markov_test

import (
	"fmt"

	"github.com/katalvlaran/dtmc/markov"
)

// ExampleChain_CanonicalForm walks the absorbing-chain pipeline on the
// gambler's-ruin walk over 0..4.
func ExampleChain_CanonicalForm() {
	c, err := markov.New([][]float64{
		{1, 0, 0, 0, 0},
		{0.5, 0, 0.5, 0, 0},
		{0, 0.5, 0, 0.5, 0},
		{0, 0, 0.5, 0, 0.5},
		{0, 0, 0, 0, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("absorbing states:", c.AbsorbingStates())
	fmt.Println("absorbing chain:", c.IsAbsorbing())

	cf, perm, err := c.CanonicalForm()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("permutation:", perm)

	steps, err := cf.ExpectedStepsToAbsorption()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("expected steps: %.2f\n", steps)
	// Output:
	// absorbing states: [0 4]
	// absorbing chain: true
	// permutation: [1 2 3 0 4]
	// expected steps: [3.00 4.00 3.00]
}

func ExampleChain_StationaryDistribution() {
	c, err := markov.New([][]float64{
		{0.5, 0.25, 0.25},
		{0.5, 0, 0.5},
		{0.25, 0.25, 0.5},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	pi, err := c.StationaryDistribution()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("irreducible=%v aperiodic=%v π=%.3f\n", c.Irreducible(), c.Aperiodic(), pi)
	// Output:
	// irreducible=true aperiodic=true π=[0.400 0.200 0.400]
}

func ExampleNew_validation() {
	_, err := markov.New([][]float64{{0.0}})
	fmt.Println(err)
	// Output:
	// markov: RowSumMismatch: row 0 sums to 0
}
