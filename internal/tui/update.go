package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(min(44, m.width)-4, max(m.bodyHeight()-2, 1))
		if m.open {
			m.layoutViewer()
		}
		return m, nil
	case viewerClosedMsg:
		m.open = false
		m.viewer = Viewer{}
		m.status = "closed " + m.current
		m.current = ""
		return m, nil
	case backdropLoadedMsg:
		if !m.open {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		if !m.open || m.notice != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		m.status = m.viewer.Status()
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.notice != "" {
			// any key dismisses the popup
			m.notice = ""
			return m, nil
		}
		if m.open {
			return m.updateViewerKeys(msg)
		}
		return m.updateSelectorKeys(msg)
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updateViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t":
		m.toggleTheme()
		return m, nil
	case "]":
		return m, m.cycleCity(1)
	case "[":
		return m, m.cycleCity(-1)
	case "h":
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	m.status = m.viewer.Status()
	return m, cmd
}

func (m Model) updateSelectorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, keys belong to the list
	if m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.l.FilterState() == list.FilterApplied {
			break
		}
		return m, tea.Quit
	case "t":
		m.toggleTheme()
		return m, nil
	case "h":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "r":
		if err := m.refreshCities(m.ctx); err != nil {
			m.status = "refresh error: " + err.Error()
		} else {
			m.status = fmt.Sprintf("%d cities", len(m.entries))
		}
		return m, nil
	case "enter":
		if it, ok := m.l.SelectedItem().(cityItem); ok {
			return m, m.openCity(it.entry.Code)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	if m.open {
		m.viewer.SetDark(m.dark)
	}
	if m.dark {
		m.status = "theme: dark"
	} else {
		m.status = "theme: light"
	}
}

// openCity loads code from the catalog. A city without stations raises the
// coming-soon notice; otherwise the viewer opens, or switches network if it
// is already open.
func (m *Model) openCity(code string) tea.Cmd {
	c, err := m.cat.City(m.ctx, code)
	if err != nil {
		zap.L().Warn("open city failed", zap.String("code", code), zap.Error(err))
		m.status = "open error: " + err.Error()
		return nil
	}
	if c.ComingSoon() {
		m.notice = fmt.Sprintf("We are working hard to bring the %s map to you. Check back later for updates!", c.Name)
		m.status = c.Name + ": coming soon"
		return nil
	}

	m.current = c.Code
	m.status = "viewing " + c.Name
	zap.L().Info("city opened", zap.String("code", c.Code), zap.Int("stations", len(c.Stations)))
	if m.open {
		return m.viewer.SetNetwork(c)
	}
	m.viewer = NewViewer(ViewerProps{
		Network:    c,
		Dark:       m.dark,
		OnClose:    closeViewer,
		WheelDelta: m.opts.WheelDelta,
	})
	m.layoutViewer()
	m.open = true
	return m.viewer.Init()
}

// cycleCity moves the selector by step, wrapping, and opens that city.
func (m *Model) cycleCity(step int) tea.Cmd {
	n := len(m.entries)
	if n == 0 {
		return nil
	}
	i := m.cityIndex(m.current)
	if sel := m.l.Index(); sel >= 0 && sel < n && m.current != "" && m.entries[sel].Code != m.current {
		// a coming-soon city may be selected while another network is shown
		i = sel
	}
	i = ((i+step)%n + n) % n
	m.l.Select(i)
	return m.openCity(m.entries[i].Code)
}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m *Model) layoutViewer() {
	m.viewer.SetBounds(0, headerHeight, max(m.width, 1), m.bodyHeight())
}
