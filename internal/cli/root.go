// Package cli wires the tpstats commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the tpstats command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tpstats",
		Short:   "Timepoint statistics viewer",
		Version: version,
		Long: `tpstats shows graph statistics per timepoint in a tabbed web page.
Each tab loads GET {STATS_BASE_URL}/stats/timepoint/{id} when it is shown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newFixtureCmd(),
		newRenderCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
