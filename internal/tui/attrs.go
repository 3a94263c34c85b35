package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"metromap/internal/network"
)

// stationColumns returns the table columns, each sized to its widest cell
// and capped at 24.
func stationColumns(rows []table.Row) []table.Column {
	titles := []string{"#", "ID", "Name", "Lines", "Interchange", "Label"}
	cols := make([]table.Column, len(titles))
	maxColW := 24
	for i, t := range titles {
		w := len(t) + 2
		for _, r := range rows {
			w = max(w, len([]rune(r[i]))+2)
		}
		cols[i] = table.Column{Title: t, Width: min(w, maxColW)}
	}
	return cols
}

func stationRows(c *network.CityMap) []table.Row {
	if c == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(c.Stations))
	for i, s := range c.Stations {
		names := make([]string, 0, len(s.Lines))
		for _, l := range s.Lines {
			names = append(names, network.LineName(l))
		}
		inter := ""
		if s.Interchange() {
			inter = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			string(s.ID),
			s.Name,
			strings.Join(names, ", "),
			inter,
			string(s.Anchor()),
		})
	}
	return rows
}

// refreshTable rebuilds the station table from the current network.
func (v *Viewer) refreshTable() {
	rows := stationRows(v.props.Network)
	// Avoid transient mismatch: clear rows, set columns, then set rows
	v.tbl.SetRows(nil)
	v.tbl.SetColumns(stationColumns(rows))
	v.tbl.SetRows(rows)
	v.tbl.SetCursor(0)
}

func (v Viewer) tableView() string {
	st := stylesFor(v.props.Dark)
	colW := 0
	for _, c := range v.tbl.Columns() {
		colW += c.Width + 3
	}
	maxW := min(v.width, max(32, colW))
	v.tbl.SetWidth(max(maxW-4, 1))
	v.tbl.SetHeight(max(min(v.height-4, 20), 1))
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(fmt.Sprintf("%s stations", v.props.Network.Name)),
		v.tbl.View(),
		st.dim.Render("enter show on map  esc back"),
	)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, st.box.Width(maxW).Render(body))
}
