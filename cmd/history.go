package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlienHub/file-organizer/internal/config"
	"github.com/AlienHub/file-organizer/internal/journal"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed operations from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		j := journal.New(cfg.JournalPath, nil)
		if err := j.Init(); err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer j.Close()

		return runHistory(cmd, j, limit)
	},
}

func runHistory(cmd *cobra.Command, j journal.Interface, limit int) error {
	out := cmd.OutOrStdout()

	entries, err := j.Recent(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No operations recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tRULE\tKIND\tRESULT\tDETAIL")
	for _, entry := range entries {
		result := "ok"
		if !entry.Succeeded {
			result = "failed: " + entry.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.ExecutedAt.Format("2006-01-02 15:04:05"),
			entry.RuleName, entry.Kind, result, entry.Detail)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}
