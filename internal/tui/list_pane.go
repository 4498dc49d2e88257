package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/selection"
	"github.com/hay-kot/atlas/internal/core/styles"
)

// listPane renders one line per location. It holds no selection rules of its
// own; the highlighted row always comes from the last applied Instruction.
type listPane struct {
	labels    []string
	cursor    int
	offset    int
	highlight int
	width     int
	height    int
}

func newListPane(records []location.Record) listPane {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label()
	}
	return listPane{
		labels:    labels,
		highlight: selection.NoHighlight,
	}
}

// SetSize sets the inner size of the pane.
func (p *listPane) SetSize(width, height int) {
	p.width = max(width, 1)
	p.height = max(height, 1)
	p.scrollTo(p.cursor)
}

// Apply takes the highlight from in and scrolls it into view.
func (p *listPane) Apply(in selection.Instruction) {
	p.highlight = in.ListHighlight
	if idx, ok := in.Highlighted(); ok {
		p.cursor = idx
		p.scrollTo(idx)
	}
}

// MoveUp moves the cursor up one row.
func (p *listPane) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
		p.scrollTo(p.cursor)
	}
}

// MoveDown moves the cursor down one row.
func (p *listPane) MoveDown() {
	if p.cursor < len(p.labels)-1 {
		p.cursor++
		p.scrollTo(p.cursor)
	}
}

// Scroll moves the viewport by delta rows without touching the cursor.
func (p *listPane) Scroll(delta int) {
	p.offset += delta
	p.clampOffset()
}

// Cursor returns the row under the keyboard cursor.
func (p listPane) Cursor() int {
	return p.cursor
}

// IndexAt maps a row inside the pane to a record index.
func (p listPane) IndexAt(row int) (int, bool) {
	if row < 0 || row >= p.height {
		return 0, false
	}
	idx := p.offset + row
	if idx >= len(p.labels) {
		return 0, false
	}
	return idx, true
}

func (p *listPane) scrollTo(idx int) {
	if idx < p.offset {
		p.offset = idx
	} else if idx >= p.offset+p.height {
		p.offset = idx - p.height + 1
	}
	p.clampOffset()
}

func (p *listPane) clampOffset() {
	maxOffset := max(len(p.labels)-p.height, 0)
	p.offset = min(max(p.offset, 0), maxOffset)
}

// View renders exactly p.height lines of p.width cells.
func (p listPane) View(focused bool) string {
	lines := make([]string, 0, p.height)

	for row := range p.height {
		idx := p.offset + row
		if idx >= len(p.labels) {
			lines = append(lines, strings.Repeat(" ", p.width))
			continue
		}

		label := ansi.Truncate(p.labels[idx], max(p.width-1, 0), "…")

		// Width includes the padding column, or the border that replaces it.
		style := styles.ListItemStyle.Width(p.width)
		if idx == p.highlight {
			style = styles.ListItemHighlightedStyle.Width(p.width)
		}
		if focused && idx == p.cursor {
			style = style.Inherit(styles.ListCursorStyle)
		}

		lines = append(lines, style.Render(label))
	}

	return strings.Join(lines, "\n")
}
