package tui

import (
	"github.com/charmbracelet/lipgloss"

	"metromap/internal/render"
)

// styles is the host chrome for one theme. The map itself is coloured by
// render.Palette; these follow the same palette so both halves match.
type styles struct {
	app    lipgloss.Style
	box    lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
	notice lipgloss.Style
	accent lipgloss.Style
}

// noticeWidth is the text width inside the notice popup.
const noticeWidth = 40

func stylesFor(dark bool) styles {
	pal := render.PaletteFor(dark)
	border := lipgloss.Color(pal.Border)
	return styles{
		app:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.LabelFg)).Background(lipgloss.Color(pal.Canvas)),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color(pal.TipFg)).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Dim)),
		notice: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(pal.TipFg)).Padding(1, 2).Width(noticeWidth+4).Align(lipgloss.Center),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Close)).Bold(true),
	}
}
