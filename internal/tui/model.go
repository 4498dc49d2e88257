// Package tui implements the interactive list + map view.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/atlas/internal/core/config"
	"github.com/hay-kot/atlas/internal/core/selection"
	"github.com/hay-kot/atlas/internal/core/styles"
)

const (
	headerHeight = 1
	footerHeight = 2
	paneBorder   = 1
)

type focusArea int

const (
	focusList focusArea = iota
	focusMap
)

// Deps holds the collaborators the TUI renders from.
type Deps struct {
	Controller *selection.Controller
	Config     *config.Config
	Logger     zerolog.Logger
}

// Model is the Bubble Tea model. Every selection change goes through the
// controller and the resulting Instruction is applied to both panes in the
// same Update, so the panes never disagree.
type Model struct {
	ctrl *selection.Controller
	log  zerolog.Logger

	keys keyMap
	help help.Model

	list      listPane
	mapv      mapPane
	listWidth int
	focus     focusArea

	width  int
	height int

	err error
}

// New creates the model with the controller's current instruction applied.
func New(deps Deps) Model {
	store := deps.Controller.Store()
	records := store.Records()

	m := Model{
		ctrl:      deps.Controller,
		log:       deps.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		list:      newListPane(records),
		mapv:      newMapPane(records, store.Center(), deps.Config.Map.Zoom),
		listWidth: deps.Config.Map.ListWidth,
	}
	m.apply(deps.Controller.Current())

	return m
}

// Err returns the contract violation that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		return m.handleWheel(msg)
	case tea.MouseClickMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusList {
			m.focus = focusMap
		} else {
			m.focus = focusList
		}
	case key.Matches(msg, m.keys.ZoomIn):
		m.mapv.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.mapv.ZoomOut()
	case m.focus == focusList && key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case m.focus == focusList && key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case m.focus == focusList && key.Matches(msg, m.keys.Select):
		return m.dispatch(selection.ListItemClicked{Index: m.list.Cursor()})
	case m.focus == focusMap && key.Matches(msg, m.keys.Prev):
		m.mapv.CycleCursor(-1)
	case m.focus == focusMap && key.Matches(msg, m.keys.Next):
		m.mapv.CycleCursor(1)
	case m.focus == focusMap && key.Matches(msg, m.keys.Select):
		if ev, ok := m.mapv.CursorClick(); ok {
			return m.dispatch(ev)
		}
	}
	return m, nil
}

func (m Model) handleWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if !m.inList(msg.X, msg.Y) {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.list.Scroll(-1)
	case tea.MouseWheelDown:
		m.list.Scroll(1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	switch {
	case m.inList(msg.X, msg.Y):
		_, ly := m.listOrigin()
		m.focus = focusList
		if idx, ok := m.list.IndexAt(msg.Y - ly); ok {
			return m.dispatch(selection.ListItemClicked{Index: idx})
		}
	case m.inMap(msg.X, msg.Y):
		mx, my := m.mapOrigin()
		m.focus = focusMap
		return m.dispatch(m.mapv.ClickAt(msg.X-mx, msg.Y-my))
	}
	return m, nil
}

func (m Model) inList(x, y int) bool {
	lx, ly := m.listOrigin()
	return x >= lx && x < lx+m.list.width && y >= ly && y < ly+m.list.height
}

func (m Model) inMap(x, y int) bool {
	mx, my := m.mapOrigin()
	return x >= mx && x < mx+m.mapv.width && y >= my && y < my+m.mapv.height
}

// dispatch runs ev through the controller. A map click on empty space changes
// nothing; a rejected event is a bug and stops the program.
func (m Model) dispatch(ev selection.Event) (tea.Model, tea.Cmd) {
	in, ok, err := m.ctrl.Handle(ev)
	if err != nil {
		m.log.Error().Err(err).Stringer("event", ev).Msg("selection event rejected")
		m.err = err
		return m, tea.Quit
	}
	if !ok {
		return m, nil
	}

	m.apply(in)
	return m, nil
}

func (m *Model) apply(in selection.Instruction) {
	m.list.Apply(in)
	m.mapv.Apply(in)
}

// layout sizes both panes from the window size.
func (m *Model) layout() {
	listOuter := min(m.listWidth, m.width/2)
	mapOuter := m.width - listOuter
	bodyHeight := m.height - headerHeight - m.footerLines()

	m.list.SetSize(listOuter-2*paneBorder, bodyHeight-2*paneBorder)
	m.mapv.SetSize(mapOuter-2*paneBorder, bodyHeight-2*paneBorder)
}

func (m Model) footerLines() int {
	if m.help.ShowAll {
		return 1 + len(m.keys.FullHelp()[0])
	}
	return footerHeight
}

func (m Model) listOrigin() (int, int) {
	return paneBorder, headerHeight + paneBorder
}

func (m Model) mapOrigin() (int, int) {
	return m.list.width + 3*paneBorder, headerHeight + paneBorder
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {

	listStyle, mapStyle := styles.PaneStyle, styles.PaneStyle
	if m.focus == focusList {
		listStyle = styles.PaneFocusedStyle
	} else {
		mapStyle = styles.PaneFocusedStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View(m.focus == focusList)),
		mapStyle.Render(m.mapv.View(m.focus == focusMap)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		body,
		m.status(),
		m.help.View(m.keys),
	)
}

func (m Model) header() string {
	n := m.ctrl.Store().Len()
	return styles.HeaderStyle.Render("atlas") +
		styles.MutedStyle.Render(fmt.Sprintf("  %d locations  zoom %d", n, m.mapv.zoom))
}

func (m Model) status() string {
	rec, _, ok := m.ctrl.Selected()
	if !ok {
		return styles.StatusStyle.Render("select a location in the list or click a marker")
	}
	return styles.StatusValueStyle.Render(rec.Label()) +
		styles.StatusStyle.Render("  "+rec.Coordinate().String())
}
