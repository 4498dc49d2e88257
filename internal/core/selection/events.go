package selection

import "fmt"

// Event is a user intent that proposes a new selection. The set is closed:
// only ListItemClicked and MapMarkerClicked implement it.
type Event interface {
	fmt.Stringer
	intent()
}

// ListItemClicked is raised when a list entry is activated. Index comes from
// the rendered list and must address a record.
type ListItemClicked struct {
	Index int
}

func (ListItemClicked) intent() {}

func (e ListItemClicked) String() string {
	return fmt.Sprintf("list item %d", e.Index)
}

// MapMarkerClicked is raised when the map is clicked. Lat and Lon are the
// clicked marker's coordinate as reported by the map, or the coordinate of
// empty map space.
type MapMarkerClicked struct {
	Lat float64
	Lon float64
}

func (MapMarkerClicked) intent() {}

func (e MapMarkerClicked) String() string {
	return fmt.Sprintf("map click at %v, %v", e.Lat, e.Lon)
}
