package location

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRecord wraps validation failures for dataset records.
var ErrInvalidRecord = errors.New("invalid location record")

//go:embed default.yaml
var defaultDataset []byte

// datasetFile is the on-disk YAML shape of a dataset.
type datasetFile struct {
	Locations []Record `yaml:"locations"`
}

// Default returns the built-in dataset.
func Default() (*Store, error) {
	records, err := Parse(defaultDataset)
	if err != nil {
		return nil, fmt.Errorf("builtin dataset: %w", err)
	}
	return NewStore(records), nil
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) ([]Record, error) {
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	if err := Validate(f.Locations); err != nil {
		return nil, err
	}

	return f.Locations, nil
}

// LoadSources builds a store from every file matched by the glob patterns, in
// pattern order and then lexical path order within a pattern. A path matched
// by more than one pattern is read once. With no patterns the built-in
// dataset is returned.
func LoadSources(patterns []string) (*Store, error) {
	if len(patterns) == 0 {
		return Default()
	}

	var (
		records []Record
		seen    = make(map[string]struct{})
	)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		slices.Sort(matches)

		for _, path := range matches {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read dataset: %w", err)
			}

			recs, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			records = append(records, recs...)
		}
	}

	if len(records) == 0 {
		return nil, ErrEmptyStore
	}

	return NewStore(records), nil
}

// Validate checks every record for a name and in-range coordinates.
func Validate(records []Record) error {
	var errs criterio.FieldErrorsBuilder

	for i, r := range records {
		field := fmt.Sprintf("locations[%d]", i)
		if r.Name == "" {
			errs = errs.Append(field+".name", errors.New("name is required"))
		}
		if !within(r.Latitude, 90) {
			errs = errs.Append(field+".latitude", fmt.Errorf("%v out of range [-90, 90]", r.Latitude))
		}
		if !within(r.Longitude, 180) {
			errs = errs.Append(field+".longitude", fmt.Errorf("%v out of range [-180, 180]", r.Longitude))
		}
	}

	if err := errs.ToError(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return nil
}

// within reports whether v is a finite number in [-limit, limit].
func within(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}
