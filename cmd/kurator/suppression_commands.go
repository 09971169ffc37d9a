package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuppressionCommand(ctx *commandContext) *cobra.Command {
	suppressionCmd := &cobra.Command{
		Use:   "suppression",
		Short: "Inspect and edit the rejection suppression list",
	}

	suppressionCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List suppression records",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.Rejected.Len() == 0 {
				fmt.Fprintln(out, "No suppression records.")
				return nil
			}
			rows := make([][]string, 0, st.Rejected.Len())
			for _, rec := range st.Rejected.All() {
				rows = append(rows, []string{rec.Title, rec.Source, formatTime(rec.RejectedAt)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Source", "Rejected"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	suppressionCmd.AddCommand(&cobra.Command{
		Use:   "clear <title> <source>",
		Short: "Remove a suppression record so future scrapes pass again",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStores()
			if err != nil {
				return err
			}
			if !st.Rejected.Clear(args[0], args[1]) {
				return fmt.Errorf("no suppression record for %q from %q", args[0], args[1])
			}
			if err := st.Rejected.Save(); err != nil {
				return fmt.Errorf("save rejection list: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared suppression for %q from %q\n", args[0], args[1])
			return nil
		},
	})

	return suppressionCmd
}
