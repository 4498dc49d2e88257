package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/tui"
	"github.com/hay-kot/atlas/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	logger := logutils.Component("tui")

	m := tui.New(tui.Deps{
		Controller: cmd.flags.NewController(logutils.Component("selection")),
		Config:     cmd.flags.Config,
		Logger:     logger,
	})

	log.Info().Int("locations", cmd.flags.Store.Len()).Msg("starting tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: %w", fm.Err())
	}

	return nil
}
