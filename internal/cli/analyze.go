package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtmc/internal/matrixfile"
	"github.com/katalvlaran/dtmc/markov"
)

func newAnalyzeCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report the structure of a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, c, err := loadChain(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}
			writeAnalysis(cmd, doc, c)
			return nil
		},
	}
}

func writeAnalysis(cmd *cobra.Command, doc *matrixfile.Document, c *markov.Chain) {
	w := cmd.OutOrStdout()
	title := doc.Name
	if title == "" {
		title = "chain"
	}
	printTitle(w, title)
	printField(w, "states", c.N())
	printBool(w, "irreducible", c.Irreducible())
	printField(w, "period", c.Period())
	printBool(w, "aperiodic", c.Aperiodic())
	printField(w, "absorbing states", names(doc, c.AbsorbingStates()))
	printBool(w, "absorbing chain", c.IsAbsorbing())
	printBool(w, "canonical", c.IsCanonical())
	printField(w, "transient states", names(doc, c.TransientStates()))
	printField(w, "recurrent states", names(doc, c.RecurrentStates()))

	fmt.Fprintln(w)
	printTitle(w, "communicating classes")
	for k, cl := range c.CommunicatingClasses() {
		printField(w, fmt.Sprintf("%d (%s, d=%d)", k, cl.Kind, cl.Period), names(doc, cl.States))
	}
}

// names renders states using the document's labels.
func names(doc *matrixfile.Document, states []int) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = doc.Label(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
