package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtmc/internal/matrixfile"
)

func newCanonicalCmd(g *globalOpts) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "canonical FILE",
		Short: "Reorder states so transient states come first",
		Args:  cobra.ExactArgs(1),
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

			w := cmd.OutOrStdout()
			printBool(w, "already canonical", perm.IsIdentity())
			printField(w, "permutation", fmt.Sprint([]int(perm)))
			printField(w, "order", fmt.Sprint(labels(doc, perm)))
			printTitle(w, "canonical matrix")
			printMatrix(w, cf.Rows(), precision)

			if out == "" {
				return nil
			}
			next := &matrixfile.Document{
				Name:    doc.Name,
				Epsilon: doc.Epsilon,
				Matrix:  cf.Rows(),
			}
			if len(doc.States) > 0 {
				next.States = labels(doc, perm)
			}
			if err := matrixfile.Save(out, next); err != nil {
				return err
			}
			logger.Info("wrote canonical matrix", "file", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "also write the canonical matrix to this file (.yaml, .toml or .json)")
	return cmd
}
