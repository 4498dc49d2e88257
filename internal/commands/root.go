package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRoot builds the atlas command tree with its global flags bound to flags.
// The caller adds Before/After hooks; docgen uses the tree as is.
func NewRoot(flags *Flags, version string) *cli.Command {
	root := &cli.Command{
		Name:      "atlas",
		Usage:     "Browse locations on a list and a map with one shared selection",
		UsageText: "atlas [global options] command [command options]",
		Description: `Atlas shows a list of places next to a terminal map. Selecting an entry in
the list highlights its marker and centers the map on it; clicking a marker
highlights and scrolls to its list entry.

Run 'atlas' with no arguments to open the interactive view.
Run 'atlas ls' to print the dataset with the indices the other commands use.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ATLAS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/atlas.log, '-' for stderr)",
				Sources:     cli.EnvVars("ATLAS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ATLAS_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("ATLAS_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags)

	root = NewLsCmd(flags).Register(root)
	root = NewShowCmd(flags).Register(root)
	root = NewResolveCmd(flags).Register(root)
	root = NewSelectCmd(flags).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	// TUI is the default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'atlas --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}
