package selection

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hay-kot/atlas/internal/core/location"
)

// Palette holds the two marker colors an Instruction can carry.
type Palette struct {
	Default   string
	Highlight string
}

// DefaultPalette is blue markers with a red highlight.
func DefaultPalette() Palette {
	return Palette{
		Default:   "#3b82f6",
		Highlight: "#ef4444",
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithPalette sets the marker colors.
func WithPalette(p Palette) Option {
	return func(c *Controller) { c.palette = p }
}

// WithLogger sets the logger used for selection tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller turns intent events into selection changes and render
// instructions. Between events its only state is the selection itself.
type Controller struct {
	store    *location.Store
	resolver *Resolver
	state    *State
	palette  Palette
	log      zerolog.Logger
}

// NewController creates a controller with an empty selection over store.
func NewController(store *location.Store, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		resolver: NewResolver(store),
		state:    NewState(store.Len()),
		palette:  DefaultPalette(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the dataset the controller selects from.
func (c *Controller) Store() *location.Store {
	return c.store
}

// Handle applies ev. It returns the new instruction and true when the
// selection was set, or false with a nil error when a map click matched no
// record. A list index outside the store is an error wrapping
// ErrInvalidIndex and leaves the selection untouched.
//
// Selecting the already selected record is not a toggle: it yields the same
// instruction again.
func (c *Controller) Handle(ev Event) (Instruction, bool, error) {
	index, ok, err := c.resolve(ev)
	if err != nil {
		return Instruction{}, false, err
	}
	if !ok {
		c.log.Debug().Stringer("event", ev).Msg("no location found at clicked coordinates")
		return Instruction{}, false, nil
	}

	if err := c.state.Set(index); err != nil {
		return Instruction{}, false, fmt.Errorf("%s: %w", ev, err)
	}

	in := c.derive()
	c.log.Debug().
		Stringer("event", ev).
		Int("index", index).
		Stringer("center", in.Center).
		Msg("selection changed")

	return in, true, nil
}

// Current derives the instruction for the present selection. With nothing
// selected the center is unchanged, every marker has the default color and
// no list entry is highlighted.
func (c *Controller) Current() Instruction {
	return c.derive()
}

// Selected returns the selected record and its index.
func (c *Controller) Selected() (location.Record, int, bool) {
	index, ok := c.state.Get()
	if !ok {
		return location.Record{}, NoHighlight, false
	}
	r, _ := c.store.Record(index)
	return r, index, true
}

func (c *Controller) resolve(ev Event) (int, bool, error) {
	switch ev := ev.(type) {
	case ListItemClicked:
		if !c.store.Contains(ev.Index) {
			return 0, false, fmt.Errorf("%s: %w: %d not in [0, %d)", ev, ErrInvalidIndex, ev.Index, c.store.Len())
		}
		return ev.Index, true, nil
	case MapMarkerClicked:
		index, ok := c.resolver.Resolve(ev.Lat, ev.Lon)
		return index, ok, nil
	default:
		return 0, false, fmt.Errorf("unsupported event %T", ev)
	}
}

func (c *Controller) derive() Instruction {
	colors := make([]string, c.store.Len())
	for i := range colors {
		colors[i] = c.palette.Default
	}

	in := Instruction{
		MarkerColors:  colors,
		ListHighlight: NoHighlight,
	}

	index, ok := c.state.Get()
	if !ok {
		return in
	}

	r, _ := c.store.Record(index)
	center := r.Coordinate()
	in.Center = &center
	in.MarkerColors[index] = c.palette.Highlight
	in.ListHighlight = index

	return in
}
