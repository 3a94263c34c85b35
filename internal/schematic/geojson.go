package schematic

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// colorProps are the feature properties consulted for a stroke colour, in order.
var colorProps = []string{"stroke", "color", "colour"}

// LoadGeoJSON reads a GeoJSON file of line art. A FeatureCollection yields one
// Path per feature with its colour taken from the stroke/color property; a
// bare geometry or single Feature yields one Path.
func LoadGeoJSON(path string) ([]Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "schematic: read %s", path)
	}
	paths, err := ParseGeoJSON(data)
	if err != nil {
		return nil, eris.Wrapf(err, "schematic: load %s", path)
	}
	return paths, nil
}

// ParseGeoJSON decodes GeoJSON line art. Features without line geometry are skipped.
func ParseGeoJSON(data []byte) ([]Path, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, eris.Wrap(err, "schematic: decode geojson")
	}
	var features []*geojson.Feature
	switch head.Type {
	case "":
		return nil, eris.New("schematic: geojson missing type")
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, eris.Wrap(err, "schematic: decode feature collection")
		}
		features = fc.Features
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, eris.Wrap(err, "schematic: decode feature")
		}
		features = []*geojson.Feature{&f}
	default:
		g, err := parseGeoJSONGeometry(data)
		if err != nil {
			return nil, err
		}
		if lines := Polylines(g); len(lines) > 0 {
			return []Path{{Lines: lines}}, nil
		}
		return nil, nil
	}
	var out []Path
	for _, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		lines := Polylines(f.Geometry)
		if len(lines) == 0 {
			continue
		}
		out = append(out, Path{Color: featureColor(f.Properties), Lines: lines})
	}
	return out, nil
}

func parseGeoJSONGeometry(data []byte) (geom.T, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, eris.Wrap(err, "schematic: decode geometry")
	}
	return g, nil
}

func featureColor(props map[string]any) string {
	for _, k := range colorProps {
		if s, ok := props[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
