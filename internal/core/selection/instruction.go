package selection

import "github.com/hay-kot/atlas/internal/core/location"

// NoHighlight is the ListHighlight value when nothing is selected.
const NoHighlight = -1

// Instruction is the complete description of both views for one selection.
// It is derived from scratch after every change and applied to the list and
// the map together.
type Instruction struct {
	// Center is where the map viewport moves to. Nil leaves it unchanged.
	Center *location.Coordinate `json:"map_center"`
	// MarkerColors has one entry per record, in store order.
	MarkerColors []string `json:"marker_colors"`
	// ListHighlight is the highlighted list index or NoHighlight.
	ListHighlight int `json:"list_highlight"`
}

// Highlighted returns the highlighted index, if any.
func (in Instruction) Highlighted() (int, bool) {
	return in.ListHighlight, in.ListHighlight != NoHighlight
}
