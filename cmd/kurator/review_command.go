package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kurator/internal/journal"
	"kurator/internal/resolver"
	"kurator/internal/review"
	"kurator/internal/similarity"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review pending events interactively",
		Long: "Walks the pending store one event at a time. Each event can be\n" +
			"approved, edited, rejected, or skipped; batch mode applies one action\n" +
			"to a selection. Progress is saved after every action.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("review is interactive and needs a terminal")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			unlock, err := ctx.acquireLock()
			if err != nil {
				return err
			}
			defer unlock()

			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			if st.Pending.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending events to review.")
				return nil
			}

			locations, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}

			started := time.Now().UTC()
			session := review.NewSession(review.Stores{
				Pending:   st.Pending,
				Published: st.Published,
				Rejected:  st.Rejected,
			}, review.Options{
				Resolver:   resolver.New(locations, organizers, logger),
				Matcher:    similarity.New(cfg.Similarity.Threshold),
				MaxMatches: cfg.Similarity.MaxResults,
				BackupDir:  cfg.Paths.BackupDir,
				Logger:     logger,
				Input:      cmd.InOrStdin(),
				Output:     cmd.OutOrStdout(),
			})

			report, err := session.Run()
			if err != nil {
				return err
			}

			// Approvals record registry usage; persist the counts.
			if err := locations.Save(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: saving location registry: %v\n", err)
			}
			if err := organizers.Save(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: saving organizer registry: %v\n", err)
			}

			recordRun(cfg, journal.Run{
				Kind:       journal.KindReview,
				StartedAt:  started,
				FinishedAt: time.Now().UTC(),
				Published:  report.Published,
				Rejected:   report.Rejected,
				Skipped:    report.Skipped,
			}, cmd.ErrOrStderr())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nSession finished: %d published, %d rejected, %d edited, %d skipped, %d still pending\n",
				report.Published, report.Rejected, report.Edited, report.Skipped, st.Pending.Len())
			return nil
		},
	}
}
