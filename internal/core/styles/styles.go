// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Glyphs drawn on the map.
const (
	GlyphMarker       = "●"
	GlyphMarkerCursor = "◉"
	GlyphGraticule    = "·"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle lipgloss.Style
	MutedStyle  lipgloss.Style
	ErrorStyle  lipgloss.Style

	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style

	ListItemStyle            lipgloss.Style
	ListItemHighlightedStyle lipgloss.Style
	ListCursorStyle          lipgloss.Style

	MapGraticuleStyle lipgloss.Style
	MapLabelStyle     lipgloss.Style

	StatusStyle      lipgloss.Style
	StatusValueStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface)
	PaneFocusedStyle = PaneStyle.
		BorderForeground(p.Primary)

	ListItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		PaddingLeft(1)
	ListItemHighlightedStyle = lipgloss.NewStyle().
		Foreground(p.Highlight).
		Bold(true).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Highlight)
	ListCursorStyle = lipgloss.NewStyle().
		Background(p.Surface)

	MapGraticuleStyle = lipgloss.NewStyle().
		Foreground(p.Grid)
	MapLabelStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	StatusValueStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// colorHex converts a palette color to the hex form glamour and huh expect.
func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}

func colorHexPtr(c color.Color) *string {
	hex := colorHex(c)
	if hex == "" {
		return nil
	}
	return &hex
}

// v1 bridges a palette color to the lipgloss v1 styles huh is built on.
func v1(c color.Color) lipglossv1.TerminalColor {
	if hex := colorHex(c); hex != "" {
		return lipglossv1.Color(hex)
	}
	return lipglossv1.NoColor{}
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(CurrentPalette.Foreground)
	primary := colorHexPtr(CurrentPalette.Primary)
	muted := colorHexPtr(CurrentPalette.Muted)
	surface := colorHexPtr(CurrentPalette.Surface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Code.Color = colorHexPtr(CurrentPalette.Secondary)
	cfg.Table.Color = fg

	return cfg
}

// FormTheme returns a huh theme using the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(v1(CurrentPalette.Primary)).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(v1(CurrentPalette.Muted))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(v1(CurrentPalette.Highlight))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(v1(CurrentPalette.Foreground))

	return t
}
