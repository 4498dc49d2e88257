package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/core/styles"
	"github.com/hay-kot/atlas/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "atlas config validate [--json]",
				Description: "Validates the configuration file, checking marker colors, dataset globs, and file paths.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	issues := collectIssues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))
	out := c.Root().Writer

	var err error
	if cmd.jsonOutput {
		err = iojson.Write(out, validationReport{Valid: len(issues) == 0, Errors: issues})
	} else {
		err = writeIssues(out, issues)
	}
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		return cli.Exit(fmt.Sprintf("%d error(s) found", len(issues)), 1)
	}
	return nil
}

type validationReport struct {
	Valid  bool              `json:"valid"`
	Errors []validationIssue `json:"errors,omitempty"`
}

func writeIssues(w io.Writer, issues []validationIssue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "Configuration is valid")
		return err
	}

	for _, issue := range issues {
		line := fmt.Sprintf("✗ %s: %s", issue.Field, issue.Message)
		if _, err := lipgloss.Fprintln(w, styles.ErrorStyle.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

func collectIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Field: "config", Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}
