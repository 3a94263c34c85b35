package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ink is the style of one cell. Colours are hex strings; empty means terminal default.
type ink struct {
	fg   string
	bg   string
	bold bool
}

type cell struct {
	r rune
	ink
}

// grid is a fixed-size cell buffer that later writes overwrite.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int, bg string) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', ink: ink{bg: bg}}
	}
	return g
}

func (g *grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *grid) at(x, y int) cell {
	if !g.inside(x, y) {
		return cell{}
	}
	return g.cells[y*g.w+x]
}

// put writes r at (x, y). An empty background keeps the one already there.
func (g *grid) put(x, y int, r rune, st ink) {
	if !g.inside(x, y) {
		return
	}
	c := &g.cells[y*g.w+x]
	if st.bg == "" {
		st.bg = c.bg
	}
	c.r = r
	c.ink = st
}

// text writes s left to right from (x, y), clipped to the grid.
func (g *grid) text(x, y int, s string, st ink) int {
	n := 0
	for _, r := range s {
		g.put(x+n, y, r, st)
		n++
	}
	return n
}

// fill paints a rectangle with r.
func (g *grid) fill(x0, y0, w, h int, r rune, st ink) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			g.put(x, y, r, st)
		}
	}
}

// box draws a rounded border around the w×h rectangle at (x0, y0) and clears its inside.
func (g *grid) box(x0, y0, w, h int, border, bg string) {
	b := lipgloss.RoundedBorder()
	edge := ink{fg: border, bg: bg}
	g.fill(x0, y0, w, h, ' ', ink{bg: bg})
	top := []rune(b.Top)[0]
	side := []rune(b.Left)[0]
	for x := x0 + 1; x < x0+w-1; x++ {
		g.put(x, y0, top, edge)
		g.put(x, y0+h-1, []rune(b.Bottom)[0], edge)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		g.put(x0, y, side, edge)
		g.put(x0+w-1, y, []rune(b.Right)[0], edge)
	}
	g.put(x0, y0, []rune(b.TopLeft)[0], edge)
	g.put(x0+w-1, y0, []rune(b.TopRight)[0], edge)
	g.put(x0, y0+h-1, []rune(b.BottomLeft)[0], edge)
	g.put(x0+w-1, y0+h-1, []rune(b.BottomRight)[0], edge)
}

// String renders the grid, one lipgloss style per run of equally styled cells.
func (g *grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.w : (y+1)*g.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].ink == row[start].ink {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteRune(c.r)
			}
			sb.WriteString(styleOf(row[start].ink).Render(run.String()))
			start = x
		}
	}
	return sb.String()
}

// Plain returns the grid text without styling.
func (g *grid) Plain() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			sb.WriteRune(c.r)
		}
	}
	return sb.String()
}

func styleOf(st ink) lipgloss.Style {
	s := lipgloss.NewStyle()
	if st.fg != "" {
		s = s.Foreground(lipgloss.Color(st.fg))
	}
	if st.bg != "" {
		s = s.Background(lipgloss.Color(st.bg))
	}
	if st.bold {
		s = s.Bold(true)
	}
	return s
}
