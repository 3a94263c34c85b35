package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metromap/internal/catalog"
	"metromap/internal/tui"
)

var darkFlag bool

var viewCmd = &cobra.Command{
	Use:   "view [CODE]",
	Short: "Open the interactive map, optionally straight into a city",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cat, closer, err := catalog.Open(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closer.Close()

	start := cfg.View.StartCity
	if len(args) == 1 {
		start = args[0]
	}
	m, err := tui.New(ctx, tui.Options{
		Catalog:    cat,
		Dark:       cfg.Theme.Dark || darkFlag,
		WheelDelta: cfg.View.WheelDelta,
		StartCity:  start,
	})
	if err != nil {
		return fmt.Errorf("build ui: %w", err)
	}

	zap.L().Info("starting viewer", zap.String("start_city", start))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, viewCmd} {
		c.Flags().BoolVar(&darkFlag, "dark", false, "start in the dark theme")
	}
	rootCmd.AddCommand(viewCmd)
}
