package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/atlas/internal/commands"
	"github.com/hay-kot/atlas/internal/core/config"
	"github.com/hay-kot/atlas/internal/core/location"
	"github.com/hay-kot/atlas/internal/core/styles"
	"github.com/hay-kot/atlas/pkg/logutils"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

// build formats the version string. Binaries from `go install` have no
// ldflags, so the module version and VCS stamp are read from the binary.
func build() string {
	v, c, d := version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok && v == "dev" {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			v = mv
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				c = s.Value
			case "vcs.time":
				d = s.Value
			}
		}
	}

	return fmt.Sprintf("%s (%.7s) %s", v, c, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	app := commands.NewRoot(flags, build())

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}

		// The TUI owns the terminal, so logs go to a file unless asked otherwise
		logFile := flags.LogFile
		if logFile == "" {
			logFile = cfg.LogFile()
		}

		logger, closer, err := logutils.New(flags.LogLevel, logFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		// Apply configured theme (validation ensures name is valid)
		palette, _ := styles.GetPalette(cfg.Theme)
		styles.SetTheme(palette)

		store, err := loadStore(cfg)
		if err != nil {
			return ctx, fmt.Errorf("load locations: %w", err)
		}

		log.Debug().
			Int("locations", store.Len()).
			Strs("sources", cfg.Locations.Sources).
			Msg("dataset loaded")

		flags.Config = cfg
		flags.Store = store
		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

func loadStore(cfg *config.Config) (*location.Store, error) {
	if len(cfg.Locations.Sources) == 0 {
		return location.Default()
	}
	return location.LoadSources(cfg.Locations.Sources)
}
