package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/core/selection"
	"github.com/hay-kot/atlas/internal/core/styles"
	"github.com/hay-kot/atlas/pkg/iojson"
	"github.com/hay-kot/atlas/pkg/logutils"
)

// selectResult is the instruction printed by select. Changed is false when a
// map click matched no location and the views keep their current state.
type selectResult struct {
	Changed bool `json:"changed"`
	selection.Instruction
}

type SelectCmd struct {
	flags *Flags

	// flags
	index int
	lat   float64
	lon   float64

	// pick chooses an index interactively; replaced in tests.
	pick func(labels []string) (int, error)
}

// NewSelectCmd creates a new select command
func NewSelectCmd(flags *Flags) *SelectCmd {
	return &SelectCmd{flags: flags, pick: pickLocation}
}

// Register adds the select command to the application
func (cmd *SelectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "select",
		Usage:     "Select a location and print the resulting view instruction",
		UsageText: "atlas select [--index N | --lat LAT --lon LON]",
		Description: `Runs one selection event and prints the instruction both views would apply,
as JSON: whether the selection changed, the map center, one marker color per
location and the highlighted list index.

--index simulates a list click, --lat/--lon simulate a map click. Without
either, an interactive picker is shown. A map click that matches no location
prints the current instruction with "changed": false.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "index",
				Aliases:     []string{"i"},
				Usage:       "list index to select",
				Destination: &cmd.index,
			},
			&cli.FloatFlag{
				Name:        "lat",
				Usage:       "latitude of a map click",
				Destination: &cmd.lat,
			},
			&cli.FloatFlag{
				Name:        "lon",
				Usage:       "longitude of a map click",
				Destination: &cmd.lon,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SelectCmd) run(_ context.Context, c *cli.Command) error {
	ev, err := cmd.event(c)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	ctrl := cmd.flags.NewController(logutils.Component("selection"))

	in, ok, err := ctrl.Handle(ev)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	if !ok {
		in = ctrl.Current()
	}

	return iojson.Write(c.Root().Writer, selectResult{Changed: ok, Instruction: in})
}

func (cmd *SelectCmd) event(c *cli.Command) (selection.Event, error) {
	hasIndex := c.IsSet("index")
	hasLat, hasLon := c.IsSet("lat"), c.IsSet("lon")

	switch {
	case hasIndex && (hasLat || hasLon):
		return nil, fmt.Errorf("--index cannot be combined with --lat/--lon")
	case hasIndex:
		return selection.ListItemClicked{Index: cmd.index}, nil
	case hasLat != hasLon:
		return nil, fmt.Errorf("--lat and --lon must be given together")
	case hasLat:
		return selection.MapMarkerClicked{Lat: cmd.lat, Lon: cmd.lon}, nil
	}

	records := cmd.flags.Store.Records()
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label()
	}

	idx, err := cmd.pick(labels)
	if err != nil {
		return nil, err
	}
	return selection.ListItemClicked{Index: idx}, nil
}

func pickLocation(labels []string) (int, error) {
	options := make([]huh.Option[int], len(labels))
	for i, l := range labels {
		options[i] = huh.NewOption(l, i)
	}

	var idx int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Location").
				Options(options...).
				Value(&idx),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return 0, err
	}
	return idx, nil
}
