package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtmc/builder"
	"github.com/katalvlaran/dtmc/internal/matrixfile"
)

const (
	defaultStates = 5
	defaultSeed   = 42
)

func newGenerateCmd() *cobra.Command {
	var (
		n      int
		seed   int64
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:       "generate MODEL",
		Short:     "Write an example transition matrix",
		Long:      "Models: " + strings.Join(builder.Models(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Models(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			con, err := builder.ByName(args[0], n)
			if err != nil {
				return err
			}
			rows, err := builder.Build(con, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			doc := &matrixfile.Document{Name: args[0], Matrix: rows}

			if out != "" {
				if err := matrixfile.Save(out, doc); err != nil {
					return err
				}
				logger.Info("wrote matrix", "model", args[0], "states", len(rows), "file", out)
				return nil
			}
			f, err := matrixfile.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := matrixfile.Marshal(doc, f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().IntVarP(&n, "states", "n", defaultStates, "size parameter for sized models")
	cmd.Flags().Int64Var(&seed, "seed", defaultSeed, "seed for random models")
	cmd.Flags().StringVarP(&format, "format", "f", string(matrixfile.YAML), "output format when printing: yaml, toml or json")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file; format from its extension")
	return cmd
}
