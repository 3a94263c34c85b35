// Package render projects a transit network through the viewport and hover
// state into a terminal frame.
package render

import (
	"math"
	"sort"
	"strings"

	"metromap/internal/backdrop"
	"metromap/internal/network"
	"metromap/internal/schematic"
	"metromap/internal/viewport"
)

// Input is everything a frame is rendered from.
type Input struct {
	Network  *network.CityMap
	State    viewport.State
	Hover    Hover
	Dark     bool
	Width    int
	Height   int
	Backdrop *backdrop.Image
}

// Compose renders one frame. Layers bottom to top: backdrop, schematic, station
// markers with labels, hovered tooltip, then the fixed title, legend and zoom
// controls.
func Compose(in Input) Frame {
	w, h := max(in.Width, 1), max(in.Height, 1)
	pal := PaletteFor(in.Dark)
	g := newGrid(w, h, pal.Canvas)
	f := Frame{W: w, H: h, grid: g}
	if in.Network == nil {
		return f
	}
	l := viewport.Layout{W: w, H: h}

	if in.Backdrop != nil {
		drawBackdrop(g, in.Backdrop, in.State, l, pal)
	}
	drawSchematic(g, in.Network.Schematic, in.State, l)

	f.markers = placeMarkers(in.Network.Stations, in.Hover, in.State, l)
	byID := make(map[network.StationID]network.Station, len(in.Network.Stations))
	for _, s := range in.Network.Stations {
		byID[s.ID] = s
	}
	for _, m := range f.markers {
		s := byID[m.ID]
		drawMarker(g, s, m)
		drawLabel(g, s, m, pal)
	}

	if id, ok := in.Hover.Current(); ok {
		for _, m := range f.markers {
			if m.ID != id {
				continue
			}
			f.tooltip = drawTooltip(g, byID[id], m, pal)
			f.hasTooltip = true
			f.hovered = id
			break
		}
	}

	drawChrome(&f, in.Network.Name, pal)
	return f
}

// pointCell rounds a projected position to its cell.
func pointCell(v viewport.Vec) (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

func drawBackdrop(g *grid, img *backdrop.Image, s viewport.State, l viewport.Layout, pal Palette) {
	br := newBrailleBuf(g.w, g.h)
	for my := 0; my < g.h*4; my++ {
		for mx := 0; mx < g.w*2; mx++ {
			p := viewport.Unproject(s, l, viewport.Vec{
				X: (float64(mx) + 0.5) / 2,
				Y: (float64(my) + 0.5) / 4,
			})
			if img.Ink(p.X/100, p.Y/100) {
				br.setPixel(mx, my, pal.Backdrop)
			}
		}
	}
	br.compose(g, false)
}

func drawSchematic(g *grid, paths []schematic.Path, s viewport.State, l viewport.Layout) {
	br := newBrailleBuf(g.w, g.h)
	for _, p := range paths {
		color := p.Color
		if color == "" {
			color = network.NeutralColor
		}
		for _, ls := range p.Lines {
			var prev *[2]int
			for _, pt := range ls {
				v := viewport.Project(s, l, network.Point{X: pt[0], Y: pt[1]})
				mx, my := int(math.Floor(v.X*2)), int(math.Floor(v.Y*4))
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my, color)
				}
				prev = &[2]int{mx, my}
			}
		}
	}
	br.compose(g, true)
}

// placeMarkers lays out every station marker and orders them for drawing:
// simple stations, then interchanges, then the hovered station. Ties keep
// network order.
func placeMarkers(stations []network.Station, hover Hover, s viewport.State, l viewport.Layout) []Marker {
	out := make([]Marker, 0, len(stations))
	for _, st := range stations {
		cx, cy := pointCell(viewport.Project(s, l, st.Position))
		m := Marker{ID: st.ID, Interchange: st.Interchange(), Layer: LayerSimple}
		if m.Interchange {
			m.Layer = LayerInterchange
			n := max(len(st.Lines), 1)
			x0 := cx - (n+2)/2
			m.Rect = Rect{X0: x0, Y0: cy, X1: x0 + n + 1, Y1: cy}
		} else {
			m.Rect = Rect{X0: cx, Y0: cy, X1: cx, Y1: cy}
		}
		if hover.Is(st.ID) {
			m.Layer = LayerHovered
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Layer < out[j].Layer })
	return out
}

func drawMarker(g *grid, s network.Station, m Marker) {
	primary := s.PrimaryColor()
	y := m.Rect.Y0
	if !m.Interchange {
		g.put(m.Rect.X0, y, '●', ink{fg: primary, bold: true})
		return
	}
	// halo, only over empty canvas
	for _, x := range []int{m.Rect.X0 - 1, m.Rect.X1 + 1} {
		if g.inside(x, y) && g.at(x, y).r == ' ' {
			g.put(x, y, '·', ink{fg: primary})
		}
	}
	g.put(m.Rect.X0, y, '(', ink{fg: primary, bold: true})
	g.put(m.Rect.X1, y, ')', ink{fg: primary, bold: true})
	colors := s.Lines
	if len(colors) == 0 {
		colors = []string{network.NeutralColor}
	}
	for i, c := range colors {
		g.put(m.Rect.X0+1+i, y, '█', ink{fg: c, bg: "#FFFFFF"})
	}
}

func drawLabel(g *grid, s network.Station, m Marker, pal Palette) {
	text := " " + s.Name + " "
	x, y := labelOrigin(m.Rect, s.Anchor(), len([]rune(text)))
	g.text(x, y, text, ink{fg: pal.LabelFg, bg: pal.LabelBg, bold: true})
}

// drawTooltip anchors the tooltip above the marker, centred, and clamps it
// into the frame.
func drawTooltip(g *grid, s network.Station, m Marker, pal Palette) Rect {
	lines := tooltipLines(s, pal, TooltipWidth)
	w := TooltipWidth + 4
	h := len(lines) + 2
	cx := (m.Rect.X0 + m.Rect.X1) / 2
	x := cx - w/2
	y := m.Rect.Y0 - 1 - h
	x = max(0, min(x, g.w-w))
	y = max(0, min(y, g.h-h))
	return drawPanel(g, x, y, lines, TooltipWidth, pal)
}

// drawChrome draws the fixed overlays: title and close button at the top,
// legend bottom-left, zoom controls bottom-right.
func drawChrome(f *Frame, name string, pal Palette) {
	g := f.grid

	title := []line{
		{{text: name + " Metro", ink: ink{fg: pal.LabelFg, bold: true}}},
		{{text: "◉ NETWORK MAP · INTERACTIVE", ink: ink{fg: pal.Dim, bold: true}}},
	}
	f.panels = append(f.panels, drawPanel(g, 0, 0, title, linesWidth(title), pal))

	closeRect := Rect{X0: f.W - 4, Y0: 1, X1: f.W - 2, Y1: 1}
	g.text(closeRect.X0, closeRect.Y0, "[x]", ink{fg: pal.Close, bg: pal.PanelBg, bold: true})
	f.controls = append(f.controls, controlHit{ControlClose, closeRect})
	f.panels = append(f.panels, closeRect)

	legend := legendLines(pal, f.W >= 60)
	lw := linesWidth(legend)
	lh := len(legend) + 2
	f.panels = append(f.panels, drawPanel(g, 0, f.H-lh, legend, lw, pal))

	buttons := []struct {
		c     Control
		label string
		dy    int
	}{
		{ControlZoomIn, "[+]", 5},
		{ControlZoomOut, "[-]", 4},
		{ControlRecenter, "[⌖]", 2},
	}
	for _, b := range buttons {
		r := Rect{X0: f.W - 4, Y0: f.H - b.dy, X1: f.W - 2, Y1: f.H - b.dy}
		g.text(r.X0, r.Y0, b.label, ink{fg: pal.LabelFg, bg: pal.PanelBg, bold: true})
		f.controls = append(f.controls, controlHit{b.c, r})
		f.panels = append(f.panels, r)
	}
}

func legendLines(pal Palette, twoCols bool) []line {
	entries := network.Legend()
	out := []line{{{text: "LEGEND", ink: ink{fg: pal.Dim, bold: true}}}}
	colW := 0
	for _, e := range entries {
		colW = max(colW, len([]rune(e.Label))+2)
	}
	step := 1
	if twoCols {
		step = 2
	}
	for i := 0; i < len(entries); i += step {
		var l line
		for j := i; j < i+step && j < len(entries); j++ {
			e := entries[j]
			l = append(l, span{text: "■ ", ink: ink{fg: e.Color}})
			text := e.Label
			if j+1 < i+step && j+1 < len(entries) {
				text += strings.Repeat(" ", colW-len([]rune(e.Label)))
			}
			l = append(l, span{text: text, ink: ink{fg: pal.PanelFg, bold: true}})
		}
		out = append(out, l)
	}
	return out
}
