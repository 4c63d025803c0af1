package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtmc/render"
)

func newDotCmd(g *globalOpts) *cobra.Command {
	var (
		svgPath    string
		noClusters bool
		prec       int
	)

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Draw the transition graph as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, c, err := loadChain(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}
			dot := render.ToDOT(c, render.Options{
				Labels:     doc.States,
				Precision:  prec,
				NoClusters: noClusters,
			})
			if svgPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			prog := newProgress(logger)
			svg, err := render.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			prog.done("rendered SVG")
			if err := os.WriteFile(svgPath, svg, 0644); err != nil {
				return err
			}
			logger.Info("wrote SVG", "file", svgPath, "bytes", len(svg))
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "render SVG to this file instead of printing DOT")
	cmd.Flags().BoolVar(&noClusters, "no-clusters", false, "do not group states by communicating class")
	cmd.Flags().IntVar(&prec, "precision", render.DefaultPrecision, "significant digits in edge labels")
	return cmd
}
