package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metromap/internal/network"
	"metromap/internal/schematic"
	"metromap/internal/viewport"
)

const (
	testW = 80
	testH = 24
)

// centre of an 80x24 map area at home scale
const cx, cy = 40, 12

func compose(t *testing.T, stations []network.Station, hover Hover) Frame {
	t.Helper()
	return Compose(Input{
		Network: &network.CityMap{Code: "TST", Name: "Testville", Stations: stations},
		State:   viewport.Home(),
		Hover:   hover,
		Width:   testW,
		Height:  testH,
	})
}

func row(f Frame, y int) string {
	return strings.Split(f.Plain(), "\n")[y]
}

func TestAnchorOffset(t *testing.T) {
	tests := []struct {
		pos  network.LabelPosition
		want Offset
	}{
		{network.LabelTop, Offset{0, -1}},
		{network.LabelBottom, Offset{0, 1}},
		{network.LabelLeft, Offset{-1, 0}},
		{network.LabelRight, Offset{1, 0}},
		{network.LabelTopLeft, Offset{-1, -1}},
		{network.LabelTopRight, Offset{1, -1}},
		{network.LabelBottomLeft, Offset{-1, 1}},
		{network.LabelBottomRight, Offset{1, 1}},
		{"", Offset{1, 0}},
		{"north", Offset{1, 0}},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			assert.Equal(t, tt.want, AnchorOffset(tt.pos))
		})
	}
}

func TestLabelOrigin(t *testing.T) {
	m := Rect{10, 10, 10, 10}
	tests := []struct {
		pos  network.LabelPosition
		x, y int
	}{
		{network.LabelRight, 12, 10},
		{network.LabelLeft, 3, 10},
		{network.LabelTop, 7, 9},
		{network.LabelBottom, 7, 11},
		{network.LabelTopRight, 11, 9},
		{network.LabelTopLeft, 4, 9},
		{network.LabelBottomRight, 11, 11},
		{network.LabelBottomLeft, 4, 11},
		{"", 12, 10},
	}
	for _, tt := range tests {
		x, y := labelOrigin(m, tt.pos, 6)
		assert.Equal(t, tt.x, x, "x for %q", tt.pos)
		assert.Equal(t, tt.y, y, "y for %q", tt.pos)
	}
}

func TestHoverExclusive(t *testing.T) {
	var h Hover
	_, ok := h.Current()
	assert.False(t, ok)

	h.Enter("a")
	h.Enter("b")
	id, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, network.StationID("b"), id)
	assert.False(t, h.Is("a"))

	// leaving a station that is not hovered changes nothing
	h.Leave("a")
	assert.True(t, h.Is("b"))

	h.Leave("b")
	_, ok = h.Current()
	assert.False(t, ok)
}

func TestSimpleMarkerAndLabel(t *testing.T) {
	f := compose(t, []network.Station{
		{ID: "1", Name: "Andheri", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#0072CE"}},
	}, Hover{})

	r := []rune(row(f, cy))
	assert.Equal(t, '●', r[cx])
	assert.Equal(t, "Andheri", string(r[cx+3:cx+10]))

	id, ok := f.StationAt(cx, cy)
	require.True(t, ok)
	assert.Equal(t, network.StationID("1"), id)

	// labels are not part of the hit region
	_, ok = f.StationAt(cx+4, cy)
	assert.False(t, ok)
}

func TestInterchangeMarker(t *testing.T) {
	f := compose(t, []network.Station{
		{ID: "dn", Name: "D.N. Nagar", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#0072CE", "#FFC20E"}},
	}, Hover{})

	require.Len(t, f.Markers(), 1)
	m := f.Markers()[0]
	assert.True(t, m.Interchange)
	assert.Equal(t, LayerInterchange, m.Layer)
	assert.Equal(t, Rect{38, cy, 41, cy}, m.Rect)
	assert.Contains(t, row(f, cy), "·(██)·")
}

func TestFlaggedInterchangeWithoutLines(t *testing.T) {
	f := compose(t, []network.Station{
		{ID: "x", Name: "X", Position: network.Point{X: 50, Y: 50}, IsInterchange: true},
	}, Hover{})
	require.Len(t, f.Markers(), 1)
	assert.True(t, f.Markers()[0].Interchange)
	assert.Contains(t, row(f, cy), "(█)")
}

func TestZOrder(t *testing.T) {
	stations := []network.Station{
		{ID: "simple", Name: "S", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#0072CE"}},
		{ID: "inter", Name: "I", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#0072CE", "#FF0000"}},
		{ID: "other", Name: "O", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#FF0000"}},
	}

	f := compose(t, stations, Hover{})
	var order []network.StationID
	for _, m := range f.Markers() {
		order = append(order, m.ID)
	}
	assert.Equal(t, []network.StationID{"simple", "other", "inter"}, order)

	id, ok := f.StationAt(cx, cy)
	require.True(t, ok)
	assert.Equal(t, network.StationID("inter"), id)

	var h Hover
	h.Enter("simple")
	f = compose(t, stations, h)
	last := f.Markers()[len(f.Markers())-1]
	assert.Equal(t, network.StationID("simple"), last.ID)
	assert.Equal(t, LayerHovered, last.Layer)
	id, ok = f.StationAt(cx, cy)
	require.True(t, ok)
	assert.Equal(t, network.StationID("simple"), id)
}

func TestTooltipUnknownColor(t *testing.T) {
	st := network.Station{ID: "q", Name: "Quiet", Position: network.Point{X: 50, Y: 50}, Lines: []string{"#123456"}}

	f := compose(t, []network.Station{st}, Hover{})
	assert.NotContains(t, f.Plain(), "Metro Line")

	var h Hover
	h.Enter("q")
	f = compose(t, []network.Station{st}, h)
	assert.Contains(t, f.Plain(), "● Metro Line")

	// the open tooltip keeps its station hovered
	id, ok := f.StationAt(cx, cy-3)
	require.True(t, ok)
	assert.Equal(t, network.StationID("q"), id)
}

func TestTooltipContent(t *testing.T) {
	st := network.Station{
		ID:              "ghat",
		Name:            "Ghatkopar",
		Lines:           []string{"#33A3C9", "#0072CE"},
		LocalConnection: "Central Line",
		Guide:           "Walk to the east exit.",
		Tip:             "Avoid peak hours.",
	}
	var text []string
	for _, l := range tooltipLines(st, PaletteFor(false), TooltipWidth) {
		text = append(text, l.plain())
	}
	joined := strings.Join(text, "\n")
	assert.Contains(t, joined, "Ghatkopar")
	assert.Contains(t, joined, "INTERCHANGE")
	assert.Contains(t, joined, "● Line 3")
	assert.Contains(t, joined, "● Line 1")
	assert.Contains(t, joined, "↔ Central Line")
	assert.Contains(t, joined, "Walk to the east exit.")
	assert.Contains(t, joined, "Tip: Avoid peak hours.")
	assert.Equal(t, strings.Repeat("▀", TooltipWidth), text[0])
}

func TestStripSegments(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, stripSegments([]string{"a", "b", "c"}, 10))
	assert.Equal(t, []int{5, 5}, stripSegments([]string{"a", "b"}, 10))
	assert.Equal(t, []int{10}, stripSegments(nil, 10))
}

func TestWrapHardCutsLongWords(t *testing.T) {
	assert.Equal(t, []string{"aaaa", "aaaa", "aa"}, wrap("aaaaaaaaaa", 4))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 7))
	assert.Nil(t, wrap("   ", 7))
}

func TestControls(t *testing.T) {
	f := compose(t, nil, Hover{})
	assert.Equal(t, ControlZoomIn, f.ControlAt(testW-4, testH-5))
	assert.Equal(t, ControlZoomOut, f.ControlAt(testW-3, testH-4))
	assert.Equal(t, ControlRecenter, f.ControlAt(testW-2, testH-2))
	assert.Equal(t, ControlClose, f.ControlAt(testW-3, 1))
	assert.Equal(t, ControlNone, f.ControlAt(cx, cy))
	assert.True(t, f.OverPanel(testW-3, testH-5))
	assert.Equal(t, "zoom-in", ControlZoomIn.String())
}

func TestPanelsShadowStations(t *testing.T) {
	// top-left corner sits under the title panel
	f := compose(t, []network.Station{
		{ID: "corner", Name: "Corner", Position: network.Point{X: 0, Y: 0}},
	}, Hover{})
	m := f.Markers()[0]
	_, ok := f.StationAt(m.Rect.X0, m.Rect.Y0)
	assert.False(t, ok)
}

func TestChrome(t *testing.T) {
	f := compose(t, nil, Hover{})
	out := f.Plain()
	assert.Contains(t, out, "Testville Metro")
	assert.Contains(t, out, "NETWORK MAP · INTERACTIVE")
	assert.Contains(t, out, "LEGEND")
	assert.Contains(t, out, "Line 2A (Yellow)")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[⌖]")
}

func TestComposeWithoutNetwork(t *testing.T) {
	f := Compose(Input{Width: 10, Height: 3})
	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 10)+"\n", 2)+strings.Repeat(" ", 10), f.Plain())
	assert.Empty(t, f.Markers())
}

func TestSchematicDrawsBraille(t *testing.T) {
	f := Compose(Input{
		Network: &network.CityMap{Name: "T", Schematic: []schematic.Path{
			{Color: "#0072CE", Lines: [][][2]float64{{{10, 50}, {90, 50}}}},
		}},
		State:   viewport.Home(),
		Width:   testW,
		Height:  testH,
	})
	// a horizontal line on the top dot row of each cell
	assert.Contains(t, row(f, cy), "⠉⠉⠉⠉")
}
