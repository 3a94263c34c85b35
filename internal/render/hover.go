package render

import "metromap/internal/network"

// Hover is the single hovered station of a viewer, if any.
type Hover struct {
	id     network.StationID
	active bool
}

// Enter makes id the hovered station, replacing any previous one.
func (h *Hover) Enter(id network.StationID) {
	h.id = id
	h.active = true
}

// Leave clears the hover if id is the hovered station.
func (h *Hover) Leave(id network.StationID) {
	if h.active && h.id == id {
		h.Clear()
	}
}

// Clear drops the hover unconditionally.
func (h *Hover) Clear() {
	h.id = ""
	h.active = false
}

// Current returns the hovered station id.
func (h Hover) Current() (network.StationID, bool) {
	return h.id, h.active
}

// Is reports whether id is hovered.
func (h Hover) Is(id network.StationID) bool {
	return h.active && h.id == id
}
