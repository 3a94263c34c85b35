// Package catalog supplies city networks to the viewer: the built-in cities,
// a directory of YAML city files, or a SQLite store they were imported into.
package catalog

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"metromap/internal/network"
)

// ErrNotFound is returned when a city code is not in the catalog.
var ErrNotFound = errors.New("catalog: city not found")

// Entry summarises one city for selection lists.
type Entry struct {
	Code     string
	Name     string
	Stations int
}

// ComingSoon reports whether the city has no network yet.
func (e Entry) ComingSoon() bool {
	return e.Stations == 0
}

// Status is the human readable availability of the city.
func (e Entry) Status() string {
	if e.ComingSoon() {
		return "coming soon"
	}
	return "available"
}

// Catalog lists cities and loads their networks.
type Catalog interface {
	Cities(ctx context.Context) ([]Entry, error)
	City(ctx context.Context, code string) (*network.CityMap, error)
}

//go:embed cities/*.yaml
var builtinFS embed.FS

// Static is an in-memory catalog in fixed order.
type Static struct {
	cities []*network.CityMap
}

// NewStatic wraps already-decoded cities.
func NewStatic(cities ...*network.CityMap) *Static {
	return &Static{cities: cities}
}

// Builtin returns the cities shipped with the binary: Mumbai first, then the
// cities still in preparation.
func Builtin() (*Static, error) {
	sub, err := fs.Sub(builtinFS, "cities")
	if err != nil {
		return nil, eris.Wrap(err, "catalog: builtin")
	}
	return loadFS(sub, "")
}

// LoadDir reads every *.yaml and *.yml file in dir. Relative schematic and
// background references resolve against dir.
func LoadDir(dir string) (*Static, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, eris.Wrapf(err, "catalog: open dir %s", dir)
	}
	return loadFS(os.DirFS(dir), dir)
}

func loadFS(fsys fs.FS, base string) (*Static, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read dir")
	}
	var cities []*network.CityMap
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, eris.Wrapf(err, "catalog: read %s", e.Name())
		}
		c, err := Decode(data, base)
		if err != nil {
			return nil, eris.Wrapf(err, "catalog: decode %s", e.Name())
		}
		cities = append(cities, c)
	}
	// networks with stations first, each group by name
	sort.SliceStable(cities, func(i, j int) bool {
		a, b := cities[i], cities[j]
		if a.ComingSoon() != b.ComingSoon() {
			return !a.ComingSoon()
		}
		return a.Name < b.Name
	})
	zap.L().Debug("catalog loaded", zap.String("source", base), zap.Int("cities", len(cities)))
	return NewStatic(cities...), nil
}

func (s *Static) Cities(_ context.Context) ([]Entry, error) {
	out := make([]Entry, 0, len(s.cities))
	for _, c := range s.cities {
		out = append(out, Entry{Code: c.Code, Name: c.Name, Stations: len(c.Stations)})
	}
	return out, nil
}

func (s *Static) City(_ context.Context, code string) (*network.CityMap, error) {
	for _, c := range s.cities {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return nil, eris.Wrapf(ErrNotFound, "code %q", code)
}
