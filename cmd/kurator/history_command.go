package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurator/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent ingest and review runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return fmt.Errorf("run journal is disabled in the configuration")
			}

			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					formatTime(run.StartedAt),
					run.Kind,
					run.Source,
					runOutcome(run),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Kind", "Source", "Outcome"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func runOutcome(run journal.Run) string {
	if run.Kind == journal.KindReview {
		return fmt.Sprintf("%d published, %d rejected, %d skipped",
			run.Published, run.Rejected, run.Skipped)
	}
	return fmt.Sprintf("%d accepted, %d duplicates, %d suppressed, %d failed",
		run.Accepted, run.Duplicates, run.Suppressed, run.Failed)
}
