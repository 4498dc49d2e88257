package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/core/selection"
	"github.com/hay-kot/atlas/pkg/iojson"
)

type ResolveCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewResolveCmd creates a new resolve command
func NewResolveCmd(flags *Flags) *ResolveCmd {
	return &ResolveCmd{flags: flags}
}

// Register adds the resolve command to the application
func (cmd *ResolveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resolve",
		Usage:     "Find the location at a coordinate",
		UsageText: "atlas resolve [--json] [--] LAT LON",
		Description: `Looks up the first location whose coordinates equal LAT LON after rounding
both to 4 decimal places. This is the lookup a map click goes through.
Use -- before negative coordinates.

Finding nothing is not an error.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type resolveResult struct {
	Found bool   `json:"found"`
	Index int    `json:"index"`
	Label string `json:"label,omitempty"`
}

func (cmd *ResolveCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected LAT LON, got %d argument(s)", c.Args().Len())
	}

	lat, lon, err := parseCoordinate(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	store := cmd.flags.Store
	res := resolveResult{Index: selection.NoHighlight}
	if idx, ok := selection.NewResolver(store).Resolve(lat, lon); ok {
		r, _ := store.Record(idx)
		res = resolveResult{Found: true, Index: idx, Label: r.Label()}
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, res)
	}

	if !res.Found {
		_, err = fmt.Fprintln(out, "no location found")
		return err
	}
	_, err = fmt.Fprintf(out, "%d\t%s\n", res.Index, res.Label)
	return err
}

func parseCoordinate(latArg, lonArg string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude %q: %w", latArg, err)
	}
	lon, err := strconv.ParseFloat(lonArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude %q: %w", lonArg, err)
	}
	return lat, lon, nil
}
