package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/atlas/internal/core/config"
	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/selection"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is the dataset selected by the config, loaded in the Before hook
	Store *location.Store
}

// NewController creates a selection controller over the loaded dataset using
// the configured marker colors.
func (f *Flags) NewController(logger zerolog.Logger) *selection.Controller {
	return selection.NewController(f.Store,
		selection.WithPalette(selection.Palette{
			Default:   f.Config.Markers.DefaultColor,
			Highlight: f.Config.Markers.HighlightColor,
		}),
		selection.WithLogger(logger),
	)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/atlas/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/atlas.
func DefaultDataDir() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// xdgDir returns the atlas directory under the base directory named by env,
// or under home/fallback when env is unset.
func xdgDir(env string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, "atlas")
}
