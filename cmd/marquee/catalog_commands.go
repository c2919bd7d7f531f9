package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/media"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the media catalog",
	}

	catalogCmd.AddCommand(newCatalogAddCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogRemoveCommand(ctx))

	return catalogCmd
}

func newCatalogAddCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <media-id> <locator>",
		Short: "Add or update a catalog record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := media.NewRecord(args[0], args[1], title)
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(store *catalog.Store) error {
				if err := store.Add(cmd.Context(), rec); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cataloged %s as %q\n", rec.ID, rec.DisplayTitle())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Display title (derived from the ID when omitted)")
	return cmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				records, err := store.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "Catalog is empty")
					return nil
				}

				if !isTerminal(out) {
					for _, rec := range records {
						fmt.Fprintf(out, "%s\t%s\t%s\n", rec.ID, rec.DisplayTitle(), rec.Locator)
					}
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{rec.ID, rec.DisplayTitle(), rec.Locator})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Media ID", "Title", "Locator"},
					rows,
					nil,
				))
				return nil
			})
		},
	}
}

func newCatalogRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <media-id>",
		Short: "Remove a catalog record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				if err := store.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}
