package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := stylesFor(m.dark)
	contentWidth := max(10, m.width)
	bodyHeight := m.bodyHeight()

	// Header
	title := " metromap ─ metro network viewer "
	if m.open && m.viewer.Network() != nil {
		title = " metromap ─ " + m.viewer.Network().Name + " "
	}
	header := st.title.Render(title)
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	var body string
	switch {
	case m.notice != "":
		center := lipgloss.NewStyle().Width(noticeWidth).Align(lipgloss.Center)
		box := st.notice.Render(lipgloss.JoinVertical(lipgloss.Left,
			center.Render(st.accent.Render("Coming Soon!")),
			"",
			center.Render(m.notice),
			"",
			center.Render(st.dim.Render("press any key")),
		))
		body = lipgloss.Place(contentWidth, bodyHeight, lipgloss.Center, lipgloss.Center, box)
	case m.open:
		body = m.viewer.View()
	default:
		box := st.box.Render(m.l.View())
		body = lipgloss.Place(contentWidth, bodyHeight, lipgloss.Center, lipgloss.Center, box)
	}
	body = lipgloss.NewStyle().Width(contentWidth).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	// Footer / help
	status := st.dim.Render(" " + m.status + " ")
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp(st))
	footer = lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).MaxHeight(footerHeight).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return st.app.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp(st styles) string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	if m.open {
		keys = []string{
			"drag pan",
			"wheel zoom",
			"+/- zoom",
			"0 recenter",
			"[/] city",
			"a stations",
			"t theme",
			"q close",
		}
	} else {
		keys = []string{
			"Enter open",
			"/ filter",
			"t theme",
			"r reload",
			"h help",
			"q quit",
		}
	}
	return st.dim.Render("  " + strings.Join(keys, "  "))
}
