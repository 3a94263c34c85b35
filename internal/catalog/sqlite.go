package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/wkt"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"metromap/internal/network"
	"metromap/internal/schematic"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is a Catalog backed by modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// one connection keeps in-memory databases and PRAGMAs consistent
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Migrate creates the catalog tables if they do not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Import saves every city in one transaction under a fresh import id, which is
// returned. A city already in the store is replaced.
func (s *SQLiteStore) Import(ctx context.Context, source string, cities ...*network.CityMap) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (id, source, imported_at) VALUES (?, ?, ?)`,
		id, source, time.Now().UTC(),
	); err != nil {
		return "", eris.Wrap(err, "sqlite: insert import")
	}
	for _, c := range cities {
		if err := saveCity(ctx, tx, id, c); err != nil {
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", eris.Wrap(err, "sqlite: commit import")
	}

	zap.L().Info("cities imported",
		zap.String("import_id", id), zap.String("source", source), zap.Int("cities", len(cities)))
	return id, nil
}

func saveCity(ctx context.Context, tx *sql.Tx, importID string, c *network.CityMap) error {
	// cascades to stations and schematic_paths
	if _, err := tx.ExecContext(ctx, `DELETE FROM cities WHERE code = ?`, c.Code); err != nil {
		return eris.Wrapf(err, "sqlite: clear city %s", c.Code)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cities (code, name, background_image, import_id, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.Code, c.Name, c.BackgroundImage, importID, time.Now().UTC(),
	); err != nil {
		return eris.Wrapf(err, "sqlite: insert city %s", c.Code)
	}

	for i, p := range c.Schematic {
		text, err := p.WKT()
		if err != nil {
			return eris.Wrapf(err, "sqlite: encode path %d of %s", i, c.Code)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schematic_paths (city_code, seq, color, wkt) VALUES (?, ?, ?, ?)`,
			c.Code, i, p.Color, text,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert path %d of %s", i, c.Code)
		}
	}

	for i, st := range c.Stations {
		lines, err := json.Marshal(st.Lines)
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal lines of %s", st.ID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stations (city_code, seq, id, name, x, y, lines, is_interchange,
				always_show_label, label_position, local_connection, guide, tip)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Code, i, string(st.ID), st.Name, st.Position.X, st.Position.Y, string(lines),
			st.IsInterchange, st.AlwaysShowLabel, string(st.LabelPosition),
			st.LocalConnection, st.Guide, st.Tip,
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert station %s of %s", st.ID, c.Code)
		}
	}
	return nil
}

func (s *SQLiteStore) Cities(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.code, c.name, COUNT(st.id)
		FROM cities c LEFT JOIN stations st ON st.city_code = c.code
		GROUP BY c.code, c.name
		ORDER BY COUNT(st.id) = 0, c.name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query cities")
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Code, &e.Name, &e.Stations); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan city")
		}
		out = append(out, e)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate cities")
}

func (s *SQLiteStore) City(ctx context.Context, code string) (*network.CityMap, error) {
	var c network.CityMap
	err := s.db.QueryRowContext(ctx,
		`SELECT code, name, background_image FROM cities WHERE code = ? COLLATE NOCASE`, code,
	).Scan(&c.Code, &c.Name, &c.BackgroundImage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "code %q", code)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get city %s", code)
	}

	if c.Schematic, err = s.paths(ctx, c.Code); err != nil {
		return nil, err
	}
	if c.Stations, err = s.stations(ctx, c.Code); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) paths(ctx context.Context, code string) ([]schematic.Path, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT color, wkt FROM schematic_paths WHERE city_code = ? ORDER BY seq`, code)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query paths of %s", code)
	}
	defer rows.Close()

	var out []schematic.Path
	for rows.Next() {
		var color, text string
		if err := rows.Scan(&color, &text); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan path")
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			zap.L().Warn("skipping stored schematic path", zap.String("city", code), zap.Error(err))
			continue
		}
		out = append(out, schematic.Path{Color: color, Lines: schematic.Polylines(g)})
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate paths")
}

func (s *SQLiteStore) stations(ctx context.Context, code string) ([]network.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, x, y, lines, is_interchange, always_show_label,
			label_position, local_connection, guide, tip
		FROM stations WHERE city_code = ? ORDER BY seq`, code)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query stations of %s", code)
	}
	defer rows.Close()

	var out []network.Station
	for rows.Next() {
		var (
			st    network.Station
			id    string
			lines string
			pos   string
		)
		if err := rows.Scan(&id, &st.Name, &st.Position.X, &st.Position.Y, &lines,
			&st.IsInterchange, &st.AlwaysShowLabel, &pos,
			&st.LocalConnection, &st.Guide, &st.Tip); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan station")
		}
		st.ID = network.StationID(id)
		st.LabelPosition = network.LabelPosition(pos)
		if err := json.Unmarshal([]byte(lines), &st.Lines); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal lines of %s", id)
		}
		out = append(out, st)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate stations")
}
