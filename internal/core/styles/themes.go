package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette holds the colors every style is derived from.
type Palette struct {
	Primary    color.Color // headers, focused borders
	Secondary  color.Color // status values
	Foreground color.Color
	Muted      color.Color
	Surface    color.Color // unfocused borders, cursor row
	Grid       color.Color // map graticule
	Highlight  color.Color // selected list entry
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary: lipgloss.Color("#7aa2f7"), Secondary: lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"), Muted: lipgloss.Color("#565f89"),
		Surface: lipgloss.Color("#3b4261"), Grid: lipgloss.Color("#292e42"),
		Highlight: lipgloss.Color("#ff9e64"), Error: lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary: lipgloss.Color("#83a598"), Secondary: lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"), Muted: lipgloss.Color("#928374"),
		Surface: lipgloss.Color("#504945"), Grid: lipgloss.Color("#3c3836"),
		Highlight: lipgloss.Color("#fe8019"), Error: lipgloss.Color("#fb4934"),
	},
	"nord": {
		Primary: lipgloss.Color("#88c0d0"), Secondary: lipgloss.Color("#8fbcbb"),
		Foreground: lipgloss.Color("#eceff4"), Muted: lipgloss.Color("#616e88"),
		Surface: lipgloss.Color("#434c5e"), Grid: lipgloss.Color("#3b4252"),
		Highlight: lipgloss.Color("#d08770"), Error: lipgloss.Color("#bf616a"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
