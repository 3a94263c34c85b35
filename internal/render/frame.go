package render

import "metromap/internal/network"

// Rect is an inclusive cell rectangle.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Layer is the stacking level of a marker; higher draws on top.
type Layer int

const (
	LayerSimple Layer = iota + 1
	LayerInterchange
	LayerHovered
)

// Marker is the drawn hit region of one station.
type Marker struct {
	ID          network.StationID
	Rect        Rect
	Layer       Layer
	Interchange bool
}

// Control is a clickable viewer button.
type Control int

const (
	ControlNone Control = iota
	ControlZoomIn
	ControlZoomOut
	ControlRecenter
	ControlClose
)

func (c Control) String() string {
	switch c {
	case ControlZoomIn:
		return "zoom-in"
	case ControlZoomOut:
		return "zoom-out"
	case ControlRecenter:
		return "recenter"
	case ControlClose:
		return "close"
	}
	return "none"
}

type controlHit struct {
	control Control
	rect    Rect
}

// Frame is one rendered map area plus the hit regions needed to route pointer input.
type Frame struct {
	W, H int

	grid     *grid
	markers  []Marker // draw order, bottom to top
	controls []controlHit
	panels   []Rect // fixed overlays that shadow the map

	tooltip    Rect
	hasTooltip bool
	hovered    network.StationID
}

// String renders the frame with colours.
func (f Frame) String() string {
	if f.grid == nil {
		return ""
	}
	return f.grid.String()
}

// Plain renders the frame as bare text.
func (f Frame) Plain() string {
	if f.grid == nil {
		return ""
	}
	return f.grid.Plain()
}

// Markers returns the marker hit regions in draw order.
func (f Frame) Markers() []Marker {
	return f.markers
}

// StationAt returns the topmost station whose marker covers (x, y). Labels are
// never hit. The open tooltip counts as part of its station, and fixed
// overlays (legend, controls, title) shadow everything beneath them.
func (f Frame) StationAt(x, y int) (network.StationID, bool) {
	for _, p := range f.panels {
		if p.Contains(x, y) {
			return "", false
		}
	}
	if f.hasTooltip && f.tooltip.Contains(x, y) {
		return f.hovered, true
	}
	for i := len(f.markers) - 1; i >= 0; i-- {
		if f.markers[i].Rect.Contains(x, y) {
			return f.markers[i].ID, true
		}
	}
	return "", false
}

// ControlAt returns the control under (x, y).
func (f Frame) ControlAt(x, y int) Control {
	for _, c := range f.controls {
		if c.rect.Contains(x, y) {
			return c.control
		}
	}
	return ControlNone
}

// OverPanel reports whether (x, y) is on a fixed overlay.
func (f Frame) OverPanel(x, y int) bool {
	for _, p := range f.panels {
		if p.Contains(x, y) {
			return true
		}
	}
	return false
}
