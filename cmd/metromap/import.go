package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metromap/internal/catalog"
	"metromap/internal/network"
)

var importBuiltin bool

var importCmd = &cobra.Command{
	Use:   "import [FILE...]",
	Short: "Import YAML city files into the SQLite catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Catalog.DB == "" {
			return eris.New("a catalog database is required (--db or METROMAP_CATALOG_DB)")
		}
		if len(args) == 0 && !importBuiltin {
			return eris.New("nothing to import: pass city files or --builtin")
		}

		cities, err := readCities(ctx, args, importBuiltin)
		if err != nil {
			return fmt.Errorf("read cities: %w", err)
		}

		store, err := catalog.NewSQLite(cfg.Catalog.DB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate store: %w", err)
		}

		source := strings.Join(args, ",")
		if importBuiltin {
			source = strings.TrimPrefix(source+",builtin", ",")
		}
		id, err := store.Import(ctx, source, cities...)
		if err != nil {
			return eris.Wrap(err, "import cities")
		}

		zap.L().Info("import complete",
			zap.String("import_id", id),
			zap.Int("cities", len(cities)),
			zap.String("db", cfg.Catalog.DB),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d cities (import %s)\n", len(cities), id)
		return nil
	},
}

func readCities(ctx context.Context, paths []string, builtin bool) ([]*network.CityMap, error) {
	var out []*network.CityMap
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, eris.Wrapf(err, "read %s", p)
		}
		c, err := catalog.Decode(data, filepath.Dir(p))
		if err != nil {
			return nil, eris.Wrapf(err, "decode %s", p)
		}
		out = append(out, c)
	}
	if builtin {
		b, err := catalog.Builtin()
		if err != nil {
			return nil, err
		}
		entries, err := b.Cities(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			c, err := b.City(ctx, e.Code)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func init() {
	importCmd.Flags().BoolVar(&importBuiltin, "builtin", false, "also import the built-in cities")
	rootCmd.AddCommand(importCmd)
}
