package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_IsolatedFromCaller(t *testing.T) {
	records := []Record{{Name: "Paris", Year: 2019, Latitude: 48.8566, Longitude: 2.3522}}
	s := NewStore(records)

	records[0].Name = "mutated"
	got, ok := s.Record(0)
	require.True(t, ok)
	assert.Equal(t, "Paris", got.Name)

	all := s.Records()
	all[0].Name = "mutated again"
	got, _ = s.Record(0)
	assert.Equal(t, "Paris", got.Name)
}

func TestStore_Record(t *testing.T) {
	s := NewStore([]Record{
		{Name: "Paris"},
		{Name: "Vienna"},
	})

	tests := []struct {
		name   string
		index  int
		want   string
		wantOK bool
	}{
		{"first", 0, "Paris", true},
		{"last", 1, "Vienna", true},
		{"negative", -1, "", false},
		{"past end", 2, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Record(tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.wantOK, s.Contains(tt.index))
		})
	}
}

func TestStore_Center(t *testing.T) {
	t.Run("mean of coordinates", func(t *testing.T) {
		s := NewStore([]Record{
			{Latitude: 10, Longitude: -20},
			{Latitude: 30, Longitude: 40},
		})
		assert.Equal(t, Coordinate{Lat: 20, Lon: 10}, s.Center())
	})

	t.Run("empty store", func(t *testing.T) {
		assert.Equal(t, Coordinate{}, NewStore(nil).Center())
	})
}

func TestRecord_Label(t *testing.T) {
	r := Record{Name: "Washington DC", Year: 2011}
	assert.Equal(t, "Washington DC (2011)", r.Label())
}
