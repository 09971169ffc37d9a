package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurator/internal/catalog"
)

func newPendingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List events awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.Pending.Len() == 0 {
				fmt.Fprintln(out, "No pending events.")
				return nil
			}

			rows := make([][]string, 0, st.Pending.Len())
			for i, ev := range st.Pending.Events() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					ev.Title,
					eventLocationLabel(&ev),
					formatTime(ev.StartTime),
					ev.Source,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Location", "Starts", "Source"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newPublishedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "published",
		Short: "List published events",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.Published.Len() == 0 {
				fmt.Fprintln(out, "No published events.")
				return nil
			}

			rows := make([][]string, 0, st.Published.Len())
			for _, ev := range st.Published.Events() {
				rows = append(rows, []string{
					ev.ID,
					ev.Title,
					formatTime(ev.StartTime),
					formatTime(ev.PublishedAt),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Title", "Starts", "Published"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func eventLocationLabel(ev *catalog.Event) string {
	if name := ev.LocationName(); name != "" {
		return name
	}
	if ev.LocationID != "" {
		return ev.LocationID
	}
	return "-"
}
