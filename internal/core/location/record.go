// Package location holds the fixed, ordered dataset of named places that the
// list and the map both render.
package location

import "fmt"

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)
}

// Record is a single named place. Records are identified by their position
// in a Store, never by name: names may repeat.
type Record struct {
	Name      string  `yaml:"name"      json:"name"`
	Year      int     `yaml:"year"      json:"year"`
	Latitude  float64 `yaml:"latitude"  json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Label is the display text used by list entries and map labels.
func (r Record) Label() string {
	return fmt.Sprintf("%s (%d)", r.Name, r.Year)
}

// Coordinate returns the record's position.
func (r Record) Coordinate() Coordinate {
	return Coordinate{Lat: r.Latitude, Lon: r.Longitude}
}
