// Package schematic holds the vector line art drawn between the background
// image and the station markers. Coordinates share the station space: percent
// of the logical canvas, origin top-left, y growing downwards.
package schematic

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gopkg.in/yaml.v3"
)

// Path is one stroked overlay geometry: one or more polylines sharing a colour.
type Path struct {
	Color string
	Lines [][][2]float64
}

// pathDoc is the on-disk shape of a Path. Exactly one of WKT or GeoJSON is set.
type pathDoc struct {
	Color   string `yaml:"color"`
	WKT     string `yaml:"wkt,omitempty"`
	GeoJSON string `yaml:"geojson,omitempty"`
}

// UnmarshalYAML decodes a path from inline WKT or GeoJSON geometry text.
func (p *Path) UnmarshalYAML(n *yaml.Node) error {
	var doc pathDoc
	if err := n.Decode(&doc); err != nil {
		return eris.Wrap(err, "schematic: decode path")
	}
	var (
		g   geom.T
		err error
	)
	switch {
	case doc.WKT != "":
		g, err = wkt.Unmarshal(doc.WKT)
		if err != nil {
			return eris.Wrapf(err, "schematic: parse wkt at line %d", n.Line)
		}
	case doc.GeoJSON != "":
		g, err = parseGeoJSONGeometry([]byte(doc.GeoJSON))
		if err != nil {
			return eris.Wrapf(err, "schematic: parse geojson at line %d", n.Line)
		}
	default:
		return eris.Errorf("schematic: path at line %d has no geometry", n.Line)
	}
	p.Color = doc.Color
	p.Lines = Polylines(g)
	return nil
}

// MarshalYAML encodes the path as WKT.
func (p Path) MarshalYAML() (any, error) {
	s, err := p.WKT()
	if err != nil {
		return nil, err
	}
	return pathDoc{Color: p.Color, WKT: s}, nil
}

// WKT renders the path as a LINESTRING, or a MULTILINESTRING when it holds
// several polylines.
func (p Path) WKT() (string, error) {
	g, err := p.Geometry()
	if err != nil {
		return "", err
	}
	s, err := wkt.Marshal(g)
	if err != nil {
		return "", eris.Wrap(err, "schematic: encode wkt")
	}
	return s, nil
}

// Geometry converts the path back into a go-geom geometry.
func (p Path) Geometry() (geom.T, error) {
	if len(p.Lines) == 1 {
		ls, err := geom.NewLineString(geom.XY).SetCoords(toCoords(p.Lines[0]))
		if err != nil {
			return nil, eris.Wrap(err, "schematic: build linestring")
		}
		return ls, nil
	}
	mls := geom.NewMultiLineString(geom.XY)
	for _, line := range p.Lines {
		ls, err := geom.NewLineString(geom.XY).SetCoords(toCoords(line))
		if err != nil {
			return nil, eris.Wrap(err, "schematic: build linestring")
		}
		if err := mls.Push(ls); err != nil {
			return nil, eris.Wrap(err, "schematic: push linestring")
		}
	}
	return mls, nil
}

func toCoords(line [][2]float64) []geom.Coord {
	out := make([]geom.Coord, 0, len(line))
	for _, pt := range line {
		out = append(out, geom.Coord{pt[0], pt[1]})
	}
	return out
}

// Polylines flattens a geometry into drawable polylines. Polygon rings are
// drawn as closed outlines; points carry no line art and are dropped.
func Polylines(g geom.T) [][][2]float64 {
	var out [][][2]float64
	add := func(coords []geom.Coord) {
		if len(coords) < 2 {
			return
		}
		line := make([][2]float64, 0, len(coords))
		for _, c := range coords {
			if len(c) < 2 {
				continue
			}
			line = append(line, [2]float64{c[0], c[1]})
		}
		if len(line) >= 2 {
			out = append(out, line)
		}
	}
	switch t := g.(type) {
	case *geom.LineString:
		add(t.Coords())
	case *geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			add(t.LineString(i).Coords())
		}
	case *geom.Polygon:
		for i := 0; i < t.NumLinearRings(); i++ {
			add(t.LinearRing(i).Coords())
		}
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			out = append(out, Polylines(t.Polygon(i))...)
		}
	case *geom.GeometryCollection:
		for _, sub := range t.Geoms() {
			out = append(out, Polylines(sub)...)
		}
	}
	return out
}
