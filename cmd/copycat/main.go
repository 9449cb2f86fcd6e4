// Command copycat runs the Copycat letter-string analogy solver from
// the command line: three strings and an iteration count in, an
// aggregated answer-distribution table out.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "copycat",
		Short:         "Solve letter-string analogies via the Copycat cognitive architecture",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd())
	return root
}
