package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"metromap/internal/catalog"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export CODE",
	Short: "Write a catalog city as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cat, closer, err := catalog.Open(ctx, cfg.Catalog)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer closer.Close()

		c, err := cat.City(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load city: %w", err)
		}
		data, err := catalog.Encode(c)
		if err != nil {
			return fmt.Errorf("encode city: %w", err)
		}

		if exportOut == "" || exportOut == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
