package tui

import (
	"math"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/atlas/internal/core/config"
	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/selection"
	"github.com/hay-kot/atlas/internal/core/styles"
)

// Terminal cells are roughly twice as tall as wide, so a row spans twice the
// degrees of a column.
const cellAspect = 2.0

const graticuleStep = 10.0

type marker struct {
	coord location.Coordinate
	label string
}

// mapPane draws the locations on an equirectangular grid centered on the
// current map center. Like listPane it only reflects applied Instructions.
type mapPane struct {
	markers   []marker
	colors    []string
	highlight int
	cursor    int
	center    location.Coordinate
	zoom      int
	width     int
	height    int
}

func newMapPane(records []location.Record, center location.Coordinate, zoom int) mapPane {
	markers := make([]marker, len(records))
	for i, r := range records {
		markers[i] = marker{coord: r.Coordinate(), label: r.Label()}
	}
	return mapPane{
		markers:   markers,
		highlight: selection.NoHighlight,
		center:    center,
		zoom:      zoom,
	}
}

// SetSize sets the inner size of the pane.
func (p *mapPane) SetSize(width, height int) {
	p.width = max(width, 1)
	p.height = max(height, 1)
}

// Apply recolors the markers and recenters the viewport when in says so.
func (p *mapPane) Apply(in selection.Instruction) {
	p.colors = in.MarkerColors
	p.highlight = in.ListHighlight
	if in.Center != nil {
		p.center = *in.Center
	}
	if idx, ok := in.Highlighted(); ok {
		p.cursor = idx
	}
}

// ZoomIn increases the zoom level up to config.MaxZoom.
func (p *mapPane) ZoomIn() {
	p.zoom = min(p.zoom+1, config.MaxZoom)
}

// ZoomOut decreases the zoom level down to config.MinZoom.
func (p *mapPane) ZoomOut() {
	p.zoom = max(p.zoom-1, config.MinZoom)
}

// CycleCursor moves the marker cursor by delta, wrapping around.
func (p *mapPane) CycleCursor(delta int) {
	n := len(p.markers)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// CursorClick is the click event for the marker under the cursor.
func (p mapPane) CursorClick() (selection.MapMarkerClicked, bool) {
	if p.cursor < 0 || p.cursor >= len(p.markers) {
		return selection.MapMarkerClicked{}, false
	}
	c := p.markers[p.cursor].coord
	return selection.MapMarkerClicked{Lat: c.Lat, Lon: c.Lon}, true
}

// ClickAt builds the click event for a cell inside the pane. A cell holding
// markers reports the coordinate of the first one in store order; an empty
// cell reports the coordinate under the cell center.
func (p mapPane) ClickAt(x, y int) selection.MapMarkerClicked {
	if idx, ok := p.MarkerAt(x, y); ok {
		c := p.markers[idx].coord
		return selection.MapMarkerClicked{Lat: c.Lat, Lon: c.Lon}
	}
	c := p.unproject(x, y)
	return selection.MapMarkerClicked{Lat: c.Lat, Lon: c.Lon}
}

// MarkerAt returns the first marker, in store order, drawn at the cell.
func (p mapPane) MarkerAt(x, y int) (int, bool) {
	for i, mk := range p.markers {
		mx, my, ok := p.project(mk.coord)
		if ok && mx == x && my == y {
			return i, true
		}
	}
	return 0, false
}

func (p mapPane) degPerCol() float64 {
	return 360 / (float64(p.width) * math.Pow(2, float64(p.zoom-1)))
}

func (p mapPane) degPerRow() float64 {
	return p.degPerCol() * cellAspect
}

// project maps a coordinate to a cell; ok is false when it falls outside.
func (p mapPane) project(c location.Coordinate) (x, y int, ok bool) {
	fx := float64(p.width)/2 + (c.Lon-p.center.Lon)/p.degPerCol()
	fy := float64(p.height)/2 - (c.Lat-p.center.Lat)/p.degPerRow()
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < p.width && y >= 0 && y < p.height
}

// unproject returns the coordinate at the center of a cell.
func (p mapPane) unproject(x, y int) location.Coordinate {
	return location.Coordinate{
		Lat: p.center.Lat - (float64(y)+0.5-float64(p.height)/2)*p.degPerRow(),
		Lon: p.center.Lon + (float64(x)+0.5-float64(p.width)/2)*p.degPerCol(),
	}
}

func (p mapPane) markerColor(i int) string {
	if i < len(p.colors) {
		return p.colors[i]
	}
	return ""
}

// View renders exactly p.height lines of p.width cells.
func (p mapPane) View(focused bool) string {
	grid := make([][]string, p.height)
	for y := range grid {
		grid[y] = make([]string, p.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	dot := styles.MapGraticuleStyle.Render(styles.GlyphGraticule)
	for lat := -90.0; lat <= 90; lat += graticuleStep {
		for lon := -180.0; lon <= 180; lon += graticuleStep {
			if x, y, ok := p.project(location.Coordinate{Lat: lat, Lon: lon}); ok {
				grid[y][x] = dot
			}
		}
	}

	// Reverse store order so the first marker on a shared cell is drawn last,
	// matching MarkerAt.
	for i := len(p.markers) - 1; i >= 0; i-- {
		if i == p.highlight {
			continue
		}
		p.drawMarker(grid, i, focused && i == p.cursor)
	}

	if p.highlight >= 0 && p.highlight < len(p.markers) {
		p.drawMarker(grid, p.highlight, focused && p.highlight == p.cursor)
		p.drawLabel(grid, p.highlight)
	}

	lines := make([]string, p.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (p mapPane) drawMarker(grid [][]string, i int, cursor bool) {
	x, y, ok := p.project(p.markers[i].coord)
	if !ok {
		return
	}

	glyph := styles.GlyphMarker
	if cursor {
		glyph = styles.GlyphMarkerCursor
	}

	style := lipgloss.NewStyle()
	if c := p.markerColor(i); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	grid[y][x] = style.Render(glyph)
}

// drawLabel writes the marker label to the right of the marker, or to the
// left when it would run off the pane.
func (p mapPane) drawLabel(grid [][]string, i int) {
	x, y, ok := p.project(p.markers[i].coord)
	if !ok {
		return
	}

	label := []rune(p.markers[i].label)
	start := x + 2
	if start+len(label) > p.width {
		start = x - 1 - len(label)
	}
	if start < 0 {
		return
	}

	for j, r := range label {
		grid[y][start+j] = styles.MapLabelStyle.Render(string(r))
	}
}
