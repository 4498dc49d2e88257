package location

import "errors"

// ErrEmptyStore is returned by loaders when no records were found.
var ErrEmptyStore = errors.New("location store is empty")

// Store is an immutable, ordered collection of records. Indices are 0..Len()-1
// and stay stable for the lifetime of the store.
type Store struct {
	records []Record
}

// NewStore copies records into a new store.
func NewStore(records []Record) *Store {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Store{records: cp}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Contains reports whether index addresses a record.
func (s *Store) Contains(index int) bool {
	return index >= 0 && index < len(s.records)
}

// Record returns the record at index.
func (s *Store) Record(index int) (Record, bool) {
	if !s.Contains(index) {
		return Record{}, false
	}
	return s.records[index], true
}

// Records returns a copy of all records in store order.
func (s *Store) Records() []Record {
	cp := make([]Record, len(s.records))
	copy(cp, s.records)
	return cp
}

// Center returns the arithmetic mean of all coordinates, or the zero
// coordinate for an empty store.
func (s *Store) Center() Coordinate {
	if len(s.records) == 0 {
		return Coordinate{}
	}

	var lat, lon float64
	for _, r := range s.records {
		lat += r.Latitude
		lon += r.Longitude
	}

	n := float64(len(s.records))
	return Coordinate{Lat: lat / n, Lon: lon / n}
}
