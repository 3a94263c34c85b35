package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"metromap/internal/catalog"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cat, closer, err := catalog.Open(ctx, cfg.Catalog)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer closer.Close()

		entries, err := cat.Cities(ctx)
		if err != nil {
			return fmt.Errorf("list cities: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), citiesTable(entries))
		return nil
	},
}

func citiesTable(entries []catalog.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "NAME", "STATIONS", "STATUS")
	for _, e := range entries {
		t.Row(e.Code, e.Name, strconv.Itoa(e.Stations), e.Status())
	}
	return t.Render()
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
