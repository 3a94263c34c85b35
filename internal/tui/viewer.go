package tui

import (
	"context"
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"metromap/internal/backdrop"
	"metromap/internal/network"
	"metromap/internal/render"
	"metromap/internal/viewport"
)

// DefaultWheelDelta is the scroll delta of one wheel notch.
const DefaultWheelDelta = 100

// nudgeStep is how far one arrow key pans, in cells.
const nudgeStep = 2

// ViewerProps is everything the host hands the viewer. OnClose is run when
// the user closes the viewer; it is the only thing the viewer reports upward.
type ViewerProps struct {
	Network    *network.CityMap
	Dark       bool
	OnClose    tea.Cmd
	WheelDelta float64
}

type backdropLoadedMsg struct {
	seq int
	img *backdrop.Image
	err error
}

// Viewer is the interactive map: it turns mouse and keys into viewport and
// hover operations and re-renders after each of them.
type Viewer struct {
	props  ViewerProps
	engine *viewport.Engine
	hover  render.Hover

	// map area on screen
	x, y          int
	width, height int

	frame render.Frame

	backdrop *backdrop.Image
	loadSeq  int

	showTable bool
	tbl       table.Model
}

// NewViewer builds a viewer at the home view.
func NewViewer(p ViewerProps) Viewer {
	if p.WheelDelta <= 0 {
		p.WheelDelta = DefaultWheelDelta
	}
	v := Viewer{
		props:  p,
		engine: viewport.New(),
		tbl:    table.New(table.WithFocused(true)),
	}
	v.tbl.SetHeight(12)
	v.rerender()
	return v
}

// Init starts loading the backdrop of the initial network.
func (v Viewer) Init() tea.Cmd {
	return v.loadBackdrop()
}

func (v Viewer) loadBackdrop() tea.Cmd {
	if v.props.Network == nil || v.props.Network.BackgroundImage == "" {
		return nil
	}
	seq, src := v.loadSeq, v.props.Network.BackgroundImage
	return func() tea.Msg {
		img, err := backdrop.Load(context.Background(), src)
		return backdropLoadedMsg{seq: seq, img: img, err: err}
	}
}

// SetNetwork swaps the displayed network. Viewport and hover reset; a backdrop
// still loading for the old network is discarded when it arrives.
func (v *Viewer) SetNetwork(n *network.CityMap) tea.Cmd {
	v.props.Network = n
	v.engine.OnNetworkChange()
	v.hover.Clear()
	v.backdrop = nil
	v.loadSeq++
	if v.showTable {
		v.refreshTable()
	}
	v.rerender()
	return v.loadBackdrop()
}

// SetDark switches the theme.
func (v *Viewer) SetDark(dark bool) {
	v.props.Dark = dark
	v.rerender()
}

// SetBounds places the map area on screen.
func (v *Viewer) SetBounds(x, y, w, h int) {
	v.x, v.y = x, y
	v.width, v.height = max(w, 1), max(h, 1)
	v.rerender()
}

// State returns a copy of the viewport state.
func (v Viewer) State() viewport.State {
	return v.engine.State()
}

// Hovered returns the hovered station, if any.
func (v Viewer) Hovered() (network.Station, bool) {
	id, ok := v.hover.Current()
	if !ok || v.props.Network == nil {
		return network.Station{}, false
	}
	return v.props.Network.Station(id)
}

// Network returns the displayed network.
func (v Viewer) Network() *network.CityMap {
	return v.props.Network
}

func (v *Viewer) rerender() {
	v.frame = render.Compose(render.Input{
		Network:  v.props.Network,
		State:    v.engine.State(),
		Hover:    v.hover,
		Dark:     v.props.Dark,
		Width:    v.width,
		Height:   v.height,
		Backdrop: v.backdrop,
	})
}

func (v Viewer) Update(msg tea.Msg) (Viewer, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case backdropLoadedMsg:
		if msg.seq != v.loadSeq {
			return v, nil
		}
		if msg.err != nil {
			zap.L().Warn("backdrop unavailable", zap.Error(msg.err))
			return v, nil
		}
		v.backdrop = msg.img
	case tea.KeyMsg:
		cmd = v.handleKey(msg)
	case tea.MouseMsg:
		cmd = v.handleMouse(msg)
	}
	v.rerender()
	return v, cmd
}

func (v *Viewer) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.showTable {
		switch msg.String() {
		case "esc", "q", "a":
			v.showTable = false
			return nil
		case "enter":
			if row := v.tbl.SelectedRow(); len(row) > 1 {
				v.hover.Enter(network.StationID(row[1]))
			}
			v.showTable = false
			return nil
		}
		var cmd tea.Cmd
		v.tbl, cmd = v.tbl.Update(msg)
		return cmd
	}
	switch msg.String() {
	case "esc", "q":
		return v.props.OnClose
	case "+", "=":
		v.engine.ZoomIn()
	case "-", "_":
		v.engine.ZoomOut()
	case "0":
		v.engine.Recenter()
	case "up":
		v.nudge(0, nudgeStep)
	case "down":
		v.nudge(0, -nudgeStep)
	case "left":
		v.nudge(nudgeStep*2, 0)
	case "right":
		v.nudge(-nudgeStep*2, 0)
	case "a":
		v.showTable = true
		v.refreshTable()
	}
	return nil
}

// nudge pans by (dx, dy) cells as a one-step drag from the area centre. A
// mouse drag in progress owns the offset, so nudges are ignored meanwhile.
func (v *Viewer) nudge(dx, dy float64) {
	if v.engine.State().Dragging {
		return
	}
	c := viewport.Vec{X: float64(v.width) / 2, Y: float64(v.height) / 2}
	v.engine.OnDragStart(c)
	v.engine.OnDragMove(c.Add(viewport.Vec{X: dx, Y: dy}))
	v.engine.OnDragEnd()
}

func (v *Viewer) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X-v.x, msg.Y-v.y
	inside := x >= 0 && y >= 0 && x < v.width && y < v.height
	if !inside || v.showTable {
		// leaving the map area ends any drag and any hover
		v.engine.OnDragEnd()
		if id, ok := v.hover.Current(); ok && !v.showTable {
			v.hover.Leave(id)
		}
		return nil
	}
	p := viewport.Vec{X: float64(x), Y: float64(y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.engine.OnWheel(-v.props.WheelDelta)
		case tea.MouseButtonWheelDown:
			v.engine.OnWheel(v.props.WheelDelta)
		case tea.MouseButtonLeft:
			switch v.frame.ControlAt(x, y) {
			case render.ControlZoomIn:
				v.engine.ZoomIn()
			case render.ControlZoomOut:
				v.engine.ZoomOut()
			case render.ControlRecenter:
				v.engine.Recenter()
			case render.ControlClose:
				return v.props.OnClose
			default:
				if !v.frame.OverPanel(x, y) {
					v.engine.OnDragStart(p)
				}
			}
		}
	case tea.MouseActionMotion:
		v.engine.OnDragMove(p)
		// hit test against the frame after the pan
		v.rerender()
		v.hoverAt(x, y)
	case tea.MouseActionRelease:
		v.engine.OnDragEnd()
	}
	return nil
}

// hoverAt runs the enter/leave transitions for the pointer at (x, y), hit
// tested against the last drawn frame.
func (v *Viewer) hoverAt(x, y int) {
	id, hit := v.frame.StationAt(x, y)
	cur, active := v.hover.Current()
	switch {
	case hit && (!active || cur != id):
		v.hover.Enter(id)
	case !hit && active:
		v.hover.Leave(cur)
	}
}

// Status is a one-line summary for the host footer.
func (v Viewer) Status() string {
	s := v.engine.State()
	out := fmt.Sprintf("zoom %.0f%%  offset %+.0f,%+.0f", s.Scale*100, s.Offset.X, s.Offset.Y)
	if st, ok := v.Hovered(); ok {
		out += "  ·  " + st.Name
	}
	return out
}

func (v Viewer) View() string {
	if v.showTable {
		return v.tableView()
	}
	return v.frame.String()
}
