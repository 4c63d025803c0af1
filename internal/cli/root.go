package cli

import (
	"context"
	"fmt"
	"math"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts holds the persistent flags shared by every command.
type globalOpts struct {
	verbose bool
	epsilon float64 // 0: use the file's epsilon or matrix.DefaultEpsilon
}

// Execute runs the dtmc CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Output goes to cmd.OutOrStdout(),
// logs to cmd.ErrOrStderr().
func newRootCmd() *cobra.Command {
	g := &globalOpts{}

	root := &cobra.Command{
		Use:          "dtmc",
		Short:        "Analyze finite discrete-time Markov chains",
		Long:         `dtmc validates a transition matrix and reports its communicating classes, periodicity, absorbing states, canonical form, stationary distribution and fundamental matrix.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.epsilon < 0 || math.IsNaN(g.epsilon) || math.IsInf(g.epsilon, 0) {
				return fmt.Errorf("--epsilon must be finite and >= 0, got %g", g.epsilon)
			}
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dtmc %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().Float64Var(&g.epsilon, "epsilon", 0, "row-sum tolerance (overrides the file; default 1e-10)")

	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newStationaryCmd(g))
	root.AddCommand(newFundamentalCmd(g))
	root.AddCommand(newCanonicalCmd(g))
	root.AddCommand(newDotCmd(g))
	root.AddCommand(newGenerateCmd())

	return root
}
