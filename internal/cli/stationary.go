package cli

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

const (
	plotHeight = 10
	plotWidth  = 80
	precision  = 6
)

func newStationaryCmd(g *globalOpts) *cobra.Command {
	var plot, perClass bool

	cmd := &cobra.Command{
		Use:   "stationary FILE",
		Short: "Compute the stationary distribution",
		Long: `Solves π·P = π, Σπ = 1 by least squares. For a reducible chain with
several recurrent classes the single solve is only a fit; --per-class prints
one distribution per recurrent class instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, c, err := loadChain(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var dists [][]float64
			if perClass {
				if dists, err = c.StationaryDistributions(); err != nil {
					return err
				}
			} else {
				if len(c.RecurrentClasses()) > 1 {
					logger.Warn("chain has several recurrent classes; result is a least-squares fit, try --per-class")
				}
				pi, err := c.StationaryDistribution()
				if err != nil {
					return err
				}
				dists = [][]float64{pi}
			}

			for k, pi := range dists {
				title := "stationary distribution"
				if perClass {
					title = fmt.Sprintf("recurrent class %d", k)
				}
				printTitle(w, title)
				for s, x := range pi {
					printField(w, doc.Label(s), fmt.Sprintf("%.*f", precision, x))
				}
				if plot {
					fmt.Fprintln(w, plotDistribution(pi, title))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plot, "plot", false, "draw an ASCII chart of π over the states")
	cmd.Flags().BoolVar(&perClass, "per-class", false, "one distribution per recurrent class")
	return cmd
}

// plotDistribution renders pi as a line chart indexed by state.
// asciigraph needs two points to draw a line, so a single state is doubled.
func plotDistribution(pi []float64, caption string) string {
	data := pi
	if len(data) == 1 {
		data = []float64{pi[0], pi[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
