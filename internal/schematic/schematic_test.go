package schematic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPathUnmarshalWKT(t *testing.T) {
	t.Parallel()

	src := `
- color: "#FFC20E"
  wkt: LINESTRING (25 5, 25 50)
- color: "#DC2626"
  wkt: MULTILINESTRING ((25 5, 45 5), (45 5, 45 50))
`
	var paths []Path
	require.NoError(t, yaml.Unmarshal([]byte(src), &paths))
	require.Len(t, paths, 2)

	assert.Equal(t, "#FFC20E", paths[0].Color)
	assert.Equal(t, [][][2]float64{{{25, 5}, {25, 50}}}, paths[0].Lines)

	assert.Equal(t, "#DC2626", paths[1].Color)
	require.Len(t, paths[1].Lines, 2)
	assert.Equal(t, [2]float64{45, 50}, paths[1].Lines[1][1])
}

func TestPathUnmarshalGeoJSON(t *testing.T) {
	t.Parallel()

	src := `
color: "#0072CE"
geojson: '{"type":"LineString","coordinates":[[10,50],[95,50]]}'
`
	var p Path
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	assert.Equal(t, "#0072CE", p.Color)
	assert.Equal(t, [][][2]float64{{{10, 50}, {95, 50}}}, p.Lines)
}

func TestPathUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"no geometry", `color: "#000000"`},
		{"bad wkt", `wkt: LINESTRING (1 2, oops)`},
		{"bad geojson", `geojson: '{"type":"LineString","coordinates":'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p Path
			assert.Error(t, yaml.Unmarshal([]byte(tt.src), &p))
		})
	}
}

func TestPathWKTEncoding(t *testing.T) {
	t.Parallel()

	single := Path{Color: "#33A3C9", Lines: [][][2]float64{{{65, 38}, {65, 50}, {60, 52}}}}
	s, err := single.WKT()
	require.NoError(t, err)
	assert.Contains(t, s, "LINESTRING")

	multi := Path{Lines: [][][2]float64{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}}
	s, err = multi.WKT()
	require.NoError(t, err)
	assert.Contains(t, s, "MULTILINESTRING")

	out, err := yaml.Marshal(single)
	require.NoError(t, err)
	var back Path
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, single, back)
}

func TestParseGeoJSONFeatureCollection(t *testing.T) {
	t.Parallel()

	data := []byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {"type":"Feature","properties":{"stroke":"#FF0000"},
	     "geometry":{"type":"LineString","coordinates":[[25,5],[45,5],[45,50]]}},
	    {"type":"Feature","properties":{"name":"depot"},
	     "geometry":{"type":"Point","coordinates":[1,1]}},
	    {"type":"Feature","properties":{"color":"#0072CE"},
	     "geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,0]]]}}
	  ]
	}`)
	paths, err := ParseGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "#FF0000", paths[0].Color)
	assert.Len(t, paths[0].Lines[0], 3)
	assert.Equal(t, "#0072CE", paths[1].Color)
	assert.Len(t, paths[1].Lines[0], 4)
}

func TestParseGeoJSONMissingType(t *testing.T) {
	t.Parallel()

	_, err := ParseGeoJSON([]byte(`{"coordinates":[]}`))
	assert.Error(t, err)
}

func TestLoadGeoJSONFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "lines.geojson")
	require.NoError(t, os.WriteFile(p, []byte(`{"type":"Feature","properties":{"stroke":"#FFC20E"},"geometry":{"type":"LineString","coordinates":[[25,5],[25,50]]}}`), 0o644))

	paths, err := LoadGeoJSON(p)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "#FFC20E", paths[0].Color)

	_, err = LoadGeoJSON(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}
