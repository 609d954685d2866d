package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqpilot/runreport/internal/config"
	"github.com/seqpilot/runreport/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated reports",
		Long: `History lists the reports recorded in the history database: which
report variant was rendered, where it was written, and which pipeline
version it reported.

Examples:
  # List the 20 most recent reports
  runreport history

  # List the 5 most recent reports
  runreport history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of reports to list (0 for all)")
	cmd.Flags().String("history-dir", config.XDGDataDir(),
		"Directory of the report history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dir, err := cmd.Flags().GetString("history-dir")
	if err != nil {
		return err
	}

	store, err := history.Open(dir, history.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("no report history available: %w", err)
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reports recorded yet.")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-5s %-9s %-17s %-20s %s\n", "ID", "KIND", "PIPELINE", "GENERATED", "OUTPUT")
	for _, rec := range records {
		fmt.Fprintf(w, "%-5d %-9s %-17s %-20s %s\n",
			rec.ID,
			rec.Kind,
			rec.PipelineVersion,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.OutputPath)
	}
	return nil
}
