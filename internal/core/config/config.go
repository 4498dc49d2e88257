// Package config handles configuration loading and validation for atlas.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/atlas/internal/core/styles"
)

// Zoom bounds for the map pane.
const (
	MinZoom = 1
	MaxZoom = 12
)

// MinListWidth is the narrowest list pane that still fits a label.
const MinListWidth = 16

// Config holds the application configuration.
type Config struct {
	Theme     string          `yaml:"theme"`
	Markers   MarkersConfig   `yaml:"markers"`
	Map       MapConfig       `yaml:"map"`
	Locations LocationsConfig `yaml:"locations"`
	DataDir   string          `yaml:"-"` // set by caller, not from config file
}

// MarkersConfig holds the two marker colors. Values are hex (#rrggbb, #rgb)
// or ANSI color numbers.
type MarkersConfig struct {
	DefaultColor   string `yaml:"default_color"`
	HighlightColor string `yaml:"highlight_color"`
}

// MapConfig holds map pane settings.
type MapConfig struct {
	Zoom      int `yaml:"zoom"`
	ListWidth int `yaml:"list_width"`
}

// LocationsConfig selects the dataset.
type LocationsConfig struct {
	// Sources are glob patterns (doublestar syntax) of YAML dataset files.
	// Relative patterns are resolved against the config file directory.
	// Empty uses the built-in dataset.
	Sources []string `yaml:"sources"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Markers: MarkersConfig{
			DefaultColor:   "#3b82f6",
			HighlightColor: "#ef4444",
		},
		Map: MapConfig{
			Zoom:      3,
			ListWidth: 32,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
			cfg.resolveSources(filepath.Dir(configPath))
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Markers.DefaultColor == "" {
		c.Markers.DefaultColor = defaults.Markers.DefaultColor
	}
	if c.Markers.HighlightColor == "" {
		c.Markers.HighlightColor = defaults.Markers.HighlightColor
	}
	if c.Map.Zoom == 0 {
		c.Map.Zoom = defaults.Map.Zoom
	}
	if c.Map.ListWidth == 0 {
		c.Map.ListWidth = defaults.Map.ListWidth
	}
}

func (c *Config) resolveSources(configDir string) {
	for i, src := range c.Locations.Sources {
		if !filepath.IsAbs(src) {
			c.Locations.Sources[i] = filepath.Join(configDir, src)
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.Markers.DefaultColor == c.Markers.HighlightColor {
		return fmt.Errorf("markers.default_color and markers.highlight_color must differ")
	}

	if c.Map.Zoom < MinZoom || c.Map.Zoom > MaxZoom {
		return fmt.Errorf("map.zoom must be between %d and %d", MinZoom, MaxZoom)
	}

	if c.Map.ListWidth < MinListWidth {
		return fmt.Errorf("map.list_width must be at least %d", MinListWidth)
	}

	return nil
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "atlas.log")
}
