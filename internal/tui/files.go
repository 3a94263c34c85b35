package tui

import (
	"context"
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"metromap/internal/catalog"
)

type cityItem struct {
	entry catalog.Entry
}

func (c cityItem) Title() string { return fmt.Sprintf("%s  %s", c.entry.Code, c.entry.Name) }
func (c cityItem) Description() string {
	if c.entry.ComingSoon() {
		return "coming soon"
	}
	return fmt.Sprintf("%d stations", c.entry.Stations)
}
func (c cityItem) FilterValue() string { return c.entry.Code + " " + c.entry.Name }

// refreshCities reloads the selector from the catalog.
func (m *Model) refreshCities(ctx context.Context) error {
	entries, err := m.cat.Cities(ctx)
	if err != nil {
		return err
	}
	m.entries = entries
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, cityItem{entry: e})
	}
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "catalog has no cities"
	}
	return nil
}

// cityIndex returns the selector position of code, or -1.
func (m Model) cityIndex(code string) int {
	for i, e := range m.entries {
		if strings.EqualFold(e.Code, code) {
			return i
		}
	}
	return -1
}
