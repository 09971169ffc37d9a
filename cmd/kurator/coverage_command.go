package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kurator/internal/resolver"
)

func newCoverageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Show entity resolution coverage for pending events",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			locations, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}

			res := resolver.New(locations, organizers, logger)
			stats := res.AnalyzeCoverage(st.Pending.Events())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Coverage over %d pending events\n", stats.TotalEvents)
			fmt.Fprintln(out, renderTable(
				[]string{"Tier", "Locations", "Organizers"},
				[][]string{
					{"embedded", strconv.Itoa(stats.Locations.Embedded), strconv.Itoa(stats.Organizers.Embedded)},
					{"override", strconv.Itoa(stats.Locations.Override), strconv.Itoa(stats.Organizers.Override)},
					{"reference", strconv.Itoa(stats.Locations.Reference), strconv.Itoa(stats.Organizers.Reference)},
					{"none", strconv.Itoa(stats.Locations.None), strconv.Itoa(stats.Organizers.None)},
				},
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			if stats.UnresolvedLocations > 0 || stats.UnresolvedOrganizers > 0 {
				fmt.Fprintf(out, "Unresolved references: %d locations, %d organizers\n",
					stats.UnresolvedLocations, stats.UnresolvedOrganizers)
			}
			return nil
		},
	}
}
