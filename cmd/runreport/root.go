package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for runreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runreport",
		Short: "Generate run-summary READMEs for genomics analysis runs",
		Long: `runreport generates human-readable README reports that summarize which
pipeline version and which tool/reference versions were used for a
genomics analysis run.

Versions are resolved from the installed package archives and from the
resource configuration file; anything that cannot be resolved is
reported as "Unknown" rather than failing the report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
