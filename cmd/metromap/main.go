package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metromap/internal/config"
)

var (
	cfg *config.Config

	dbFlag  string
	dirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "metromap",
	Short: "Interactive metro network map in the terminal",
	Long:  "Browse city metro networks: pan and zoom the schematic map, hover stations for line and guide details, and manage the city catalog.",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if dbFlag != "" {
			cfg.Catalog.DB = dbFlag
		}
		if dirFlag != "" {
			cfg.Catalog.Dir = dirFlag
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite catalog path (overrides catalog.db)")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "directory of YAML city files (overrides catalog.dir)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
