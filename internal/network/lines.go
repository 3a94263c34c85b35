package network

import "strings"

// FallbackLineName is shown for colours missing from the lookup.
const FallbackLineName = "Metro Line"

// LegendEntry is one row of the fixed map legend.
type LegendEntry struct {
	Color string
	Label string
}

type knownLine struct {
	color  string
	name   string
	legend string
}

// Mumbai network colours. Extending this table is a data change.
var knownLines = []knownLine{
	{color: "#0072CE", name: "Line 1", legend: "Line 1 (Blue)"},
	{color: "#FFC20E", name: "Line 2A", legend: "Line 2A (Yellow)"},
	{color: "#33A3C9", name: "Line 3", legend: "Line 3 (Aqua)"},
	{color: "#FF0000", name: "Line 7", legend: "Line 7 (Red)"},
}

// LineName resolves a line colour to its display name.
func LineName(color string) string {
	for _, l := range knownLines {
		if strings.EqualFold(l.color, strings.TrimSpace(color)) {
			return l.name
		}
	}
	return FallbackLineName
}

// Legend returns the fixed legend rows in display order.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(knownLines))
	for _, l := range knownLines {
		out = append(out, LegendEntry{Color: l.color, Label: l.legend})
	}
	return out
}
