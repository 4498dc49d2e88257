package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/selection"
)

type ShowCmd struct {
	flags *Flags
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the details of one location",
		UsageText: "atlas show INDEX",
		Action:    cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected INDEX, got %d argument(s)", c.Args().Len())
	}

	idx, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("parse index %q: %w", c.Args().First(), err)
	}

	r, ok := cmd.flags.Store.Record(idx)
	if !ok {
		return fmt.Errorf("show %d: %w", idx, selection.ErrInvalidIndex)
	}

	out := c.Root().Writer
	md := locationMarkdown(idx, r, cmd.duplicatesOf(idx))
	if isTerminal(out) {
		return renderMarkdown(out, md)
	}

	_, err = fmt.Fprint(out, md)
	return err
}

// duplicatesOf lists the other indices sharing idx's rounded coordinate.
func (cmd *ShowCmd) duplicatesOf(idx int) []int {
	r, _ := cmd.flags.Store.Record(idx)
	lat, lon := selection.Round(r.Latitude), selection.Round(r.Longitude)

	var dups []int
	for i, other := range cmd.flags.Store.Records() {
		if i != idx && selection.Round(other.Latitude) == lat && selection.Round(other.Longitude) == lon {
			dups = append(dups, i)
		}
	}
	return dups
}

func locationMarkdown(idx int, r location.Record, dups []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Label())
	fmt.Fprintf(&b, "- **Index:** %d\n", idx)
	fmt.Fprintf(&b, "- **Year:** %d\n", r.Year)
	fmt.Fprintf(&b, "- **Coordinates:** %s\n", r.Coordinate())

	if len(dups) > 0 {
		refs := make([]string, len(dups))
		for i, d := range dups {
			refs[i] = strconv.Itoa(d)
		}
		fmt.Fprintf(&b, "\n> Shares its coordinates with %s. Map clicks select the lowest index.\n",
			strings.Join(refs, ", "))
	}

	return b.String()
}
