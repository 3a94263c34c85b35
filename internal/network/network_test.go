package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInterchange(t *testing.T) {
	tests := []struct {
		name string
		s    Station
		want bool
	}{
		{"no lines", Station{}, false},
		{"one line", Station{Lines: []string{"#0072CE"}}, false},
		{"flagged", Station{IsInterchange: true, Lines: []string{"#0072CE"}}, true},
		{"two lines", Station{Lines: []string{"#0072CE", "#FFC20E"}}, true},
		{"flagged without lines", Station{IsInterchange: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Interchange())
		})
	}
}

func TestPrimaryColor(t *testing.T) {
	assert.Equal(t, NeutralColor, Station{}.PrimaryColor())
	assert.Equal(t, NeutralColor, Station{Lines: []string{""}}.PrimaryColor())
	assert.Equal(t, "#FF0000", Station{Lines: []string{"#FF0000", "#0072CE"}}.PrimaryColor())
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, LabelRight, Station{}.Anchor())
	assert.Equal(t, LabelRight, Station{LabelPosition: "sideways"}.Anchor())
	for _, p := range LabelPositions() {
		assert.Equal(t, p, Station{LabelPosition: p}.Anchor())
	}
}

func TestLineName(t *testing.T) {
	assert.Equal(t, "Line 1", LineName("#0072CE"))
	assert.Equal(t, "Line 2A", LineName("#ffc20e"))
	assert.Equal(t, "Line 3", LineName("#33A3C9"))
	assert.Equal(t, "Line 7", LineName(" #FF0000 "))
	assert.Equal(t, FallbackLineName, LineName("#123456"))
	assert.Equal(t, FallbackLineName, LineName(""))
}

func TestLegend(t *testing.T) {
	l := Legend()
	require.Len(t, l, 4)
	assert.Equal(t, LegendEntry{Color: "#0072CE", Label: "Line 1 (Blue)"}, l[0])
	assert.Equal(t, "Line 7 (Red)", l[3].Label)
}

func TestCityMapYAML(t *testing.T) {
	src := `
code: MUM
name: Mumbai
stations:
  - id: 1
    name: Versova
    x: 10
    y: 50
    lines: ["#0072CE"]
    labelPosition: bottom
  - id: dn-nagar
    name: D.N. Nagar
    x: 25
    y: 50
    lines: ["#0072CE", "#FFC20E"]
    localConnection: Andheri West
`
	var c CityMap
	require.NoError(t, yaml.Unmarshal([]byte(src), &c))
	assert.Equal(t, "MUM", c.Code)
	assert.False(t, c.ComingSoon())
	require.Len(t, c.Stations, 2)

	s := c.Stations[0]
	assert.Equal(t, StationID("1"), s.ID)
	assert.Equal(t, Point{X: 10, Y: 50}, s.Position)
	assert.Equal(t, LabelBottom, s.Anchor())

	got, ok := c.Station("dn-nagar")
	require.True(t, ok)
	assert.True(t, got.Interchange())
	assert.Equal(t, "Andheri West", got.LocalConnection)

	_, ok = c.Station("missing")
	assert.False(t, ok)
}

func TestComingSoon(t *testing.T) {
	c := CityMap{Code: "DEL", Name: "Delhi"}
	assert.True(t, c.ComingSoon())
}

func TestPointLogical(t *testing.T) {
	x, y := Point{X: 25, Y: 50}.Logical()
	assert.InDelta(t, 250.0, x, 1e-9)
	assert.InDelta(t, 500.0, y, 1e-9)
}
