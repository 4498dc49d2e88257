package selection

import (
	"math"

	"github.com/hay-kot/atlas/internal/core/location"
)

// Precision is the number of decimal digits compared when matching a click to
// a stored coordinate (about 11 m at the equator).
const Precision = 4

var scale = math.Pow10(Precision)

// maxDegrees bounds both axes. Values beyond it have no grid key, which also
// keeps the scaled value well inside int64.
const maxDegrees = 180

type gridKey struct {
	lat, lon int64
}

type entry struct {
	key   gridKey
	valid bool
}

// Resolver maps a clicked coordinate back to a store index.
type Resolver struct {
	entries []entry
}

// NewResolver snapshots the rounded coordinates of every record in store.
func NewResolver(store *location.Store) *Resolver {
	records := store.Records()
	entries := make([]entry, len(records))
	for i, r := range records {
		k, ok := keyOf(r.Latitude, r.Longitude)
		entries[i] = entry{key: k, valid: ok}
	}
	return &Resolver{entries: entries}
}

// Resolve returns the index of the first record, in store order, whose
// rounded coordinate equals the rounded query. Records sharing a coordinate
// always resolve to the lowest index.
func (r *Resolver) Resolve(lat, lon float64) (int, bool) {
	want, ok := keyOf(lat, lon)
	if !ok {
		return -1, false
	}

	for i, e := range r.entries {
		if e.valid && e.key == want {
			return i, true
		}
	}
	return -1, false
}

// Round rounds v to Precision decimal digits, ties to even.
func Round(v float64) float64 {
	return math.RoundToEven(v*scale) / scale
}

func keyOf(lat, lon float64) (gridKey, bool) {
	if !onGrid(lat) || !onGrid(lon) {
		return gridKey{}, false
	}
	return gridKey{
		lat: int64(math.RoundToEven(lat * scale)),
		lon: int64(math.RoundToEven(lon * scale)),
	}, true
}

// onGrid reports whether v is finite and within maxDegrees. NaN fails the
// comparison.
func onGrid(v float64) bool {
	return math.Abs(v) <= maxDegrees
}
