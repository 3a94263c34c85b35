package network

import (
	"strings"

	"gopkg.in/yaml.v3"

	"metromap/internal/schematic"
)

// CanvasSize is the side of the square logical canvas, in logical units.
// Station positions are percentages of it.
const CanvasSize = 1000.0

// NeutralColor is used for stations that list no lines.
const NeutralColor = "#64748b"

// StationID identifies a station within one network. Source data may use
// strings or numbers; the literal text is kept either way.
type StationID string

// UnmarshalYAML keeps scalar ids (numbers included) as their literal text.
func (id *StationID) UnmarshalYAML(n *yaml.Node) error {
	*id = StationID(strings.TrimSpace(n.Value))
	return nil
}

// Point is a position on the logical canvas, in percent (0..100).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Logical converts the percentage position to logical canvas units.
func (p Point) Logical() (float64, float64) {
	return p.X / 100 * CanvasSize, p.Y / 100 * CanvasSize
}

// LabelPosition is the compass anchor of a station label.
type LabelPosition string

const (
	LabelTop         LabelPosition = "top"
	LabelBottom      LabelPosition = "bottom"
	LabelLeft        LabelPosition = "left"
	LabelRight       LabelPosition = "right"
	LabelTopLeft     LabelPosition = "top-left"
	LabelTopRight    LabelPosition = "top-right"
	LabelBottomLeft  LabelPosition = "bottom-left"
	LabelBottomRight LabelPosition = "bottom-right"
)

// LabelPositions lists every anchor.
func LabelPositions() []LabelPosition {
	return []LabelPosition{
		LabelTop, LabelBottom, LabelLeft, LabelRight,
		LabelTopLeft, LabelTopRight, LabelBottomLeft, LabelBottomRight,
	}
}

// Valid reports whether p is one of the eight anchors.
func (p LabelPosition) Valid() bool {
	for _, v := range LabelPositions() {
		if p == v {
			return true
		}
	}
	return false
}

// Station is a point of interest on the network.
type Station struct {
	ID              StationID     `yaml:"id"`
	Name            string        `yaml:"name"`
	Position        Point         `yaml:",inline"`
	Lines           []string      `yaml:"lines"`
	IsInterchange   bool          `yaml:"isInterchange,omitempty"`
	AlwaysShowLabel bool          `yaml:"alwaysShowLabel,omitempty"`
	LabelPosition   LabelPosition `yaml:"labelPosition,omitempty"`
	LocalConnection string        `yaml:"localConnection,omitempty"`
	Guide           string        `yaml:"guide,omitempty"`
	Tip             string        `yaml:"tip,omitempty"`
}

// Interchange reports the effective interchange status: flagged, or served
// by more than one line.
func (s Station) Interchange() bool {
	return s.IsInterchange || len(s.Lines) > 1
}

// PrimaryColor is the first line colour, or NeutralColor when there is none.
func (s Station) PrimaryColor() string {
	if len(s.Lines) == 0 || s.Lines[0] == "" {
		return NeutralColor
	}
	return s.Lines[0]
}

// Anchor resolves the label position. Absent or unknown values mean right.
func (s Station) Anchor() LabelPosition {
	if s.LabelPosition.Valid() {
		return s.LabelPosition
	}
	return LabelRight
}

// CityMap is one city's static network definition.
type CityMap struct {
	Code            string           `yaml:"code"`
	Name            string           `yaml:"name"`
	BackgroundImage string           `yaml:"backgroundImage,omitempty"`
	Schematic       []schematic.Path `yaml:"schematic,omitempty"`
	SchematicFile   string           `yaml:"schematicFile,omitempty"` // GeoJSON, relative to the city file
	Stations        []Station        `yaml:"stations,omitempty"`
}

// ComingSoon reports whether the city has no network to show yet.
func (c *CityMap) ComingSoon() bool {
	return len(c.Stations) == 0
}

// Station looks a station up by id.
func (c *CityMap) Station(id StationID) (Station, bool) {
	for _, s := range c.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}
