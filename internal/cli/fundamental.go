package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFundamentalCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "fundamental FILE",
		Short: "Compute N = (I-Q)^-1 and absorption quantities",
		Long: `Reorders the chain canonically (transient states first), then prints the
fundamental matrix N, the expected number of steps to absorption t = N·1 and
the absorption probabilities B = N·R.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, c, err := loadChain(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}
			cf, perm, err := c.CanonicalForm()
			if err != nil {
				return err
			}
			logger.Debug("canonical form", "permutation", perm, "identity", perm.IsIdentity())

			prog := newProgress(logger)
			n, err := cf.FundamentalMatrix()
			if err != nil {
				return err
			}
			steps, err := cf.ExpectedStepsToAbsorption()
			if err != nil {
				return err
			}
			b, err := cf.AbsorptionProbabilities()
			if err != nil {
				return err
			}
			prog.done("solved transient block")

			w := cmd.OutOrStdout()
			t := len(cf.TransientStates())
			order := labels(doc, perm)
			printTitle(w, "transient states")
			fmt.Fprintln(w, order[:t])
			printTitle(w, "recurrent states")
			fmt.Fprintln(w, order[t:])
			printTitle(w, "fundamental matrix N")
			printMatrix(w, n.ToRows(), precision)
			printTitle(w, "expected steps to absorption")
			for i, x := range steps {
				printField(w, order[i], fmt.Sprintf("%.*f", precision, x))
			}
			printTitle(w, "absorption probabilities B")
			printMatrix(w, b.ToRows(), precision)
			return nil
		},
	}
}
