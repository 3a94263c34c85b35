package catalog

import (
	"context"
	"io"

	"go.uber.org/zap"

	"metromap/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open selects the catalog configured in cfg: the SQLite store when a
// database is set, else the YAML directory, else the built-in cities. The
// returned closer releases the store.
func Open(ctx context.Context, cfg config.CatalogConfig) (Catalog, io.Closer, error) {
	switch {
	case cfg.DB != "":
		s, err := NewSQLite(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, nil, err
		}
		zap.L().Debug("using sqlite catalog", zap.String("db", cfg.DB))
		return s, s, nil
	case cfg.Dir != "":
		s, err := LoadDir(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	default:
		s, err := Builtin()
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
}
