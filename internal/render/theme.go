package render

// Palette is the colour set for one theme.
type Palette struct {
	Canvas   string
	Backdrop string
	LabelFg  string
	LabelBg  string
	PanelFg  string
	PanelBg  string
	Border   string
	Dim      string
	TipFg    string
	Close    string
}

var (
	lightPalette = Palette{
		Canvas:   "#FDFBF7",
		Backdrop: "#CBD5E1",
		LabelFg:  "#0F172A",
		LabelBg:  "#FFFFFF",
		PanelFg:  "#475569",
		PanelBg:  "#FFFFFF",
		Border:   "#E2E8F0",
		Dim:      "#94A3B8",
		TipFg:    "#1D4ED8",
		Close:    "#EF4444",
	}
	darkPalette = Palette{
		Canvas:   "#1E293B",
		Backdrop: "#475569",
		LabelFg:  "#FFFFFF",
		LabelBg:  "#0F172A",
		PanelFg:  "#CBD5E1",
		PanelBg:  "#0F172A",
		Border:   "#334155",
		Dim:      "#64748B",
		TipFg:    "#93C5FD",
		Close:    "#EF4444",
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
