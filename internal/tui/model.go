// Package tui is the terminal front end: a host shell with a city selector
// and the interactive metro map viewer it opens.
package tui

import (
	"context"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"metromap/internal/catalog"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// Options configures the host shell.
type Options struct {
	Catalog    catalog.Catalog
	Dark       bool
	WheelDelta float64
	// StartCity opens this city's viewer right away.
	StartCity string
}

type viewerClosedMsg struct{}

// Model is the host shell. It owns the theme flag and which network is
// active; the viewer owns everything about looking at it.
type Model struct {
	ctx  context.Context
	cat  catalog.Catalog
	opts Options

	width  int
	height int

	dark        bool
	helpVisible bool
	status      string

	// City selector
	l       list.Model
	entries []catalog.Entry

	viewer  Viewer
	open    bool
	current string // code of the city in the viewer

	// coming-soon popup
	notice string

	initCmd tea.Cmd
}

// New builds the host from a catalog.
func New(ctx context.Context, opts Options) (Model, error) {
	m := Model{
		ctx:         ctx,
		cat:         opts.Catalog,
		opts:        opts,
		dark:        opts.Dark,
		helpVisible: true,
		status:      "metromap ready",
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Cities"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	if err := m.refreshCities(ctx); err != nil {
		return Model{}, err
	}
	if opts.StartCity != "" {
		m.initCmd = m.openCity(opts.StartCity)
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return m.initCmd }

// closeViewer is the OnClose the host hands every viewer.
func closeViewer() tea.Msg { return viewerClosedMsg{} }
