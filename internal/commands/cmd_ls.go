package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/styles"
	"github.com/hay-kot/atlas/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	plain      bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all locations",
		UsageText: "atlas ls [--json] [--plain]",
		Description: `Displays every location with the index used by 'atlas select' and 'atlas show'.

On a terminal the table is rendered as markdown; piped output is a plain table.
Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "always print a plain table",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})

	return app
}

type locationInfo struct {
	Index int `json:"index"`
	location.Record
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	records := cmd.flags.Store.Records()
	out := c.Root().Writer

	if cmd.jsonOutput {
		for i, r := range records {
			if err := iojson.WriteLine(out, locationInfo{Index: i, Record: r}); err != nil {
				return fmt.Errorf("encode location: %w", err)
			}
		}
		return nil
	}

	if !cmd.plain && isTerminal(out) {
		return renderMarkdown(out, locationsMarkdown(records))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INDEX\tNAME\tYEAR\tLATITUDE\tLONGITUDE")
	for i, r := range records {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%.4f\t%.4f\n", i, r.Name, r.Year, r.Latitude, r.Longitude)
	}
	return w.Flush()
}

func locationsMarkdown(records []location.Record) string {
	var b strings.Builder
	b.WriteString("| # | Name | Year | Latitude | Longitude |\n")
	b.WriteString("|--:|------|-----:|---------:|----------:|\n")
	for i, r := range records {
		fmt.Fprintf(&b, "| %d | %s | %d | %.4f | %.4f |\n", i, r.Name, r.Year, r.Latitude, r.Longitude)
	}
	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderMarkdown writes md through glamour with the active theme, falling
// back to the raw markdown when the renderer cannot be built.
func renderMarkdown(w io.Writer, md string) error {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		_, err = io.WriteString(w, md)
		return err
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(w, rendered)
	return err
}
