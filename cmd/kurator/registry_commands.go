package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kurator/internal/entity"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Manage the location and organizer registries",
	}

	registryCmd.AddCommand(newLocationsCommand(ctx))
	registryCmd.AddCommand(newOrganizersCommand(ctx))
	return registryCmd
}

func newLocationsCommand(ctx *commandContext) *cobra.Command {
	locationsCmd := &cobra.Command{
		Use:   "locations",
		Short: "Manage shared locations",
	}

	locationsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, _, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if locations.Len() == 0 {
				fmt.Fprintln(out, "No locations registered.")
				return nil
			}
			rows := make([][]string, 0, locations.Len())
			for _, loc := range locations.All() {
				rows = append(rows, []string{
					loc.ID,
					loc.Name,
					fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lon),
					yesNo(loc.Verified),
					strconv.Itoa(loc.UsageCount),
					strings.Join(loc.Aliases, ", "),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Coordinates", "Verified", "Used", "Aliases"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	})

	var lat, lon float64
	var address string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, _, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			loc := locations.Register(args[0], lat, lon, address)
			if err := locations.Save(); err != nil {
				return fmt.Errorf("save location registry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s\n", loc.Name, loc.ID)
			return nil
		},
	}
	addCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	addCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	addCmd.Flags().StringVar(&address, "address", "", "Street address")
	locationsCmd.AddCommand(addCmd)

	locationsCmd.AddCommand(&cobra.Command{
		Use:   "verify <id>",
		Short: "Mark a location as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, _, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			if err := locations.Verify(args[0]); err != nil {
				return err
			}
			if err := locations.Save(); err != nil {
				return fmt.Errorf("save location registry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Verified %s\n", args[0])
			return nil
		},
	})

	locationsCmd.AddCommand(&cobra.Command{
		Use:   "alias <id> <alias>",
		Short: "Add an alias to a location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, _, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			if err := locations.AddAlias(args[0], args[1]); err != nil {
				return err
			}
			if err := locations.Save(); err != nil {
				return fmt.Errorf("save location registry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added alias %q to %s\n", args[1], args[0])
			return nil
		},
	})

	locationsCmd.AddCommand(&cobra.Command{
		Use:   "find <query>",
		Short: "Find locations by name or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, _, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			matches := locations.Find(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching locations.")
				return nil
			}
			printLocationMatches(cmd, matches)
			return nil
		},
	})

	return locationsCmd
}

func printLocationMatches(cmd *cobra.Command, matches []entity.Location) {
	rows := make([][]string, 0, len(matches))
	for _, loc := range matches {
		rows = append(rows, []string{loc.ID, loc.Name, yesNo(loc.Verified)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Name", "Verified"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}

func newOrganizersCommand(ctx *commandContext) *cobra.Command {
	organizersCmd := &cobra.Command{
		Use:   "organizers",
		Short: "Manage shared organizers",
	}

	organizersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered organizers",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if organizers.Len() == 0 {
				fmt.Fprintln(out, "No organizers registered.")
				return nil
			}
			rows := make([][]string, 0, organizers.Len())
			for _, org := range organizers.All() {
				rows = append(rows, []string{
					org.ID,
					org.Name,
					org.Email,
					yesNo(org.Verified),
					strconv.Itoa(org.UsageCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Email", "Verified", "Used"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	})

	var email string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new organizer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			org := organizers.Register(args[0], email)
			if err := organizers.Save(); err != nil {
				return fmt.Errorf("save organizer registry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s\n", org.Name, org.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&email, "email", "", "Contact email")
	organizersCmd.AddCommand(addCmd)

	organizersCmd.AddCommand(&cobra.Command{
		Use:   "verify <id>",
		Short: "Mark an organizer as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			if err := organizers.Verify(args[0]); err != nil {
				return err
			}
			if err := organizers.Save(); err != nil {
				return fmt.Errorf("save organizer registry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Verified %s\n", args[0])
			return nil
		},
	})

	organizersCmd.AddCommand(&cobra.Command{
		Use:   "find <query>",
		Short: "Find organizers by name or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, organizers, err := ctx.openRegistries()
			if err != nil {
				return err
			}
			matches := organizers.Find(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching organizers.")
				return nil
			}
			rows := make([][]string, 0, len(matches))
			for _, org := range matches {
				rows = append(rows, []string{org.ID, org.Name, yesNo(org.Verified)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Verified"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	return organizersCmd
}
