package location

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.Equal(t, 19, s.Len())

	first, _ := s.Record(0)
	assert.Equal(t, Record{Name: "Avignon", Year: 2001, Latitude: 43.9481, Longitude: 4.8032}, first)

	// Both Madrid rows share a coordinate.
	a, _ := s.Record(1)
	b, _ := s.Record(17)
	assert.Equal(t, "Madrid", a.Name)
	assert.Equal(t, "Madrid", b.Name)
	assert.Equal(t, a.Coordinate(), b.Coordinate())
	assert.NotEqual(t, a.Year, b.Year)
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		recs, err := Parse([]byte(`
locations:
  - name: Paris
    year: 2019
    latitude: 48.8566
    longitude: 2.3522
`))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Paris", recs[0].Name)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("locations: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse dataset")
	})

	t.Run("invalid records", func(t *testing.T) {
		_, err := Parse([]byte(`
locations:
  - { name: "", year: 1, latitude: 91, longitude: 0 }
  - { name: Edge, year: 1, latitude: -90, longitude: 181 }
`))
		require.ErrorIs(t, err, ErrInvalidRecord)

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 3)
	})
}

func TestLoadSources(t *testing.T) {
	t.Run("no patterns uses builtin", func(t *testing.T) {
		s, err := LoadSources(nil)
		require.NoError(t, err)
		assert.Equal(t, 19, s.Len())
	})

	t.Run("ordered by pattern then path", func(t *testing.T) {
		dir := t.TempDir()
		writeDataset(t, dir, "eu/b.yaml", "locations:\n  - { name: B, year: 2, latitude: 2, longitude: 2 }\n")
		writeDataset(t, dir, "eu/a.yaml", "locations:\n  - { name: A, year: 1, latitude: 1, longitude: 1 }\n")
		writeDataset(t, dir, "asia/c.yaml", "locations:\n  - { name: C, year: 3, latitude: 3, longitude: 3 }\n")

		s, err := LoadSources([]string{
			filepath.Join(dir, "asia", "*.yaml"),
			filepath.Join(dir, "**", "*.yaml"),
		})
		require.NoError(t, err)

		var names []string
		for _, r := range s.Records() {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"C", "A", "B"}, names)
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := LoadSources([]string{filepath.Join(t.TempDir(), "*.yaml")})
		require.ErrorIs(t, err, ErrEmptyStore)
	})

	t.Run("bad file names the path", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDataset(t, dir, "bad.yaml", "locations:\n  - { name: X, year: 1, latitude: 100, longitude: 0 }\n")

		_, err := LoadSources([]string{filepath.Join(dir, "*.yaml")})
		require.ErrorIs(t, err, ErrInvalidRecord)
		assert.Contains(t, err.Error(), path)
	})
}
