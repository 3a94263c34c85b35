package render

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"metromap/internal/network"
)

// TooltipWidth is the inner text width of the station tooltip.
const TooltipWidth = 34

type span struct {
	text string
	ink  ink
}

type line []span

func (l line) plain() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// stripSegments splits width into one segment per line colour, equal widths,
// remainder spread over the first segments.
func stripSegments(colors []string, width int) []int {
	if len(colors) == 0 {
		return []int{width}
	}
	n := len(colors)
	out := make([]int, n)
	for i := range out {
		out[i] = width / n
		if i < width%n {
			out[i]++
		}
	}
	return out
}

func wrap(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	for _, row := range strings.Split(wordwrap.WrapString(s, uint(width)), "\n") {
		r := []rune(row)
		// a single word longer than the width is hard-cut
		for len(r) > width {
			out = append(out, string(r[:width]))
			r = r[width:]
		}
		out = append(out, string(r))
	}
	return out
}

// tooltipLines builds the tooltip body for s: colour strip, name, interchange
// tag, one legend row per line, then the optional connection, guide and tip.
func tooltipLines(s network.Station, pal Palette, width int) []line {
	var out []line

	colors := s.Lines
	if len(colors) == 0 {
		colors = []string{network.NeutralColor}
	}
	var strip line
	for i, w := range stripSegments(colors, width) {
		strip = append(strip, span{text: strings.Repeat("▀", w), ink: ink{fg: colors[i]}})
	}
	out = append(out, strip)

	for _, row := range wrap(s.Name, width) {
		out = append(out, line{{text: row, ink: ink{fg: pal.LabelFg, bold: true}}})
	}
	if s.Interchange() {
		out = append(out, line{{text: " INTERCHANGE ", ink: ink{fg: pal.PanelFg, bg: pal.Border, bold: true}}})
	}
	for _, c := range s.Lines {
		out = append(out, line{
			{text: "● ", ink: ink{fg: c}},
			{text: network.LineName(c), ink: ink{fg: pal.LabelFg}},
		})
	}
	if s.LocalConnection != "" {
		for i, row := range wrap(s.LocalConnection, width-2) {
			prefix := "  "
			if i == 0 {
				prefix = "↔ "
			}
			out = append(out, line{{text: prefix + row, ink: ink{fg: pal.PanelFg}}})
		}
	}
	if s.Guide != "" || s.Tip != "" {
		out = append(out, line{{text: strings.Repeat("─", width), ink: ink{fg: pal.Border}}})
	}
	for _, row := range wrap(s.Guide, width) {
		out = append(out, line{{text: row, ink: ink{fg: pal.LabelFg}}})
	}
	if s.Tip != "" {
		for i, row := range wrap(s.Tip, width-5) {
			prefix := "     "
			if i == 0 {
				prefix = "Tip: "
			}
			out = append(out, line{{text: prefix + row, ink: ink{fg: pal.TipFg, bold: true}}})
		}
	}
	return out
}

// drawPanel draws lines inside a bordered box at (x, y) and returns the box rectangle.
func drawPanel(g *grid, x, y int, lines []line, inner int, pal Palette) Rect {
	w := inner + 4
	h := len(lines) + 2
	g.box(x, y, w, h, pal.Border, pal.PanelBg)
	for i, l := range lines {
		cx := x + 2
		for _, s := range l {
			st := s.ink
			if st.bg == "" {
				st.bg = pal.PanelBg
			}
			cx += g.text(cx, y+1+i, s.text, st)
		}
	}
	return Rect{X0: x, Y0: y, X1: x + w - 1, Y1: y + h - 1}
}

func linesWidth(lines []line) int {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.plain())))
	}
	return w
}
