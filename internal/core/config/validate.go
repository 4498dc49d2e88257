package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/lucasb-eyer/go-colorful"
)

// ValidateDeep performs comprehensive validation of the configuration
// including color syntax, dataset globs, and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips config file check). This calls Validate() first for basic
// structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("markers.default_color", c.Markers.DefaultColor, isColor),
		criterio.Run("markers.highlight_color", c.Markers.HighlightColor, isColor),
		c.validateSources(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateSources checks each dataset pattern is well formed and matches at
// least one file.
func (c *Config) validateSources() error {
	var errs criterio.FieldErrorsBuilder

	for i, pattern := range c.Locations.Sources {
		field := fmt.Sprintf("locations.sources[%d]", i)

		if !doublestar.ValidatePathPattern(pattern) {
			errs = errs.Append(field, fmt.Errorf("invalid glob %q", pattern))
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			errs = errs.Append(field, fmt.Errorf("glob %q: %w", pattern, err))
			continue
		}
		if len(matches) == 0 {
			errs = errs.Append(field, fmt.Errorf("no files match %q", pattern))
		}
	}

	return errs.ToError()
}

// isColor accepts what lipgloss renders: hex colors and ANSI 0-255.
func isColor(v string) error {
	if _, err := colorful.Hex(v); err == nil {
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("%q is not a hex color or ANSI color number", v)
}

func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
