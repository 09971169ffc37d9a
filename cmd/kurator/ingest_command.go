package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurator/internal/journal"
	"kurator/internal/pipeline"
	"kurator/internal/sourcecache"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "ingest <candidates.json>",
		Short: "Ingest scraped candidates into the pending store",
		Long: "Reads a JSON array of candidate events produced by a scrape adapter,\n" +
			"assigns deterministic ids, and appends unseen candidates to the pending\n" +
			"store. Previously processed or suppressed candidates are dropped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return fmt.Errorf("--source is required")
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

			candidates, err := pipeline.LoadCandidates(args[0])
			if err != nil {
				return err
			}

			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			cache := sourcecache.NewCache(cfg.SourceCachePath(source), cfg.Dedup.MaxEntries, logger)
			cache.Load()

			ingestor := pipeline.NewIngestor(st.Pending, st.Rejected, cache, logger)
			report, err := ingestor.Ingest(source, candidates)
			if err != nil {
				return err
			}

			recordRun(cfg, journal.Run{
				Kind:       journal.KindIngest,
				Source:     source,
				StartedAt:  report.StartedAt,
				FinishedAt: report.FinishedAt,
				Accepted:   report.Accepted,
				Duplicates: report.Duplicates,
				Suppressed: report.Suppressed,
				Failed:     report.Failed,
			}, cmd.ErrOrStderr())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingested %d candidates from %s\n", report.Total(), source)
			fmt.Fprintln(out, renderTable(
				[]string{"Outcome", "Count"},
				[][]string{
					{"accepted", fmt.Sprintf("%d", report.Accepted)},
					{"duplicates", fmt.Sprintf("%d", report.Duplicates)},
					{"suppressed", fmt.Sprintf("%d", report.Suppressed)},
					{"failed", fmt.Sprintf("%d", report.Failed)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Source name the candidates were scraped from")
	return cmd
}
