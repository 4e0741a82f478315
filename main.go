package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/commands"
	"github.com/taskgamer/taskgamer/internal/core/config"
	"github.com/taskgamer/taskgamer/internal/store/jsonfile"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
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
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser  func()
		trackerApp = &tracker.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "taskgamer",
		Usage:     "Track tasks, goals, habits, and focus sessions",
		UsageText: "taskgamer [global options] command [command options]",
		Description: `Taskgamer is a personal productivity tracker. It keeps tasks,
long-running goals with milestones, recurring habits, and ad-hoc
calendar events in plain JSON files, merges them into one timeline,
and scores each day from what actually got done.

Run 'taskgamer stats' for the dashboard or 'taskgamer timer run' to
start a focus session.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKGAMER_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/taskgamer.log)",
				Sources:     cli.EnvVars("TASKGAMER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKGAMER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TASKGAMER_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/taskgamer.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "taskgamer.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data dir: %w", err)
			}

			stores := tracker.Stores{
				Tasks:  jsonfile.NewTaskStore(cfg.DataDir, logger),
				Goals:  jsonfile.NewGoalStore(cfg.DataDir, logger),
				Habits: jsonfile.NewHabitStore(cfg.DataDir, logger),
				Events: jsonfile.NewEventStore(cfg.DataDir, logger),
				Focus:  jsonfile.NewFocusStore(cfg.DataDir, logger),
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*trackerApp = *tracker.NewApp(cfg, stores, logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewTaskCmd(flags, trackerApp).Register(app)
	app = commands.NewGoalCmd(flags, trackerApp).Register(app)
	app = commands.NewHabitCmd(flags, trackerApp).Register(app)
	app = commands.NewEventCmd(flags, trackerApp).Register(app)
	app = commands.NewTimelineCmd(flags, trackerApp).Register(app)
	app = commands.NewStatsCmd(flags, trackerApp).Register(app)
	app = commands.NewReportCmd(flags, trackerApp).Register(app)
	app = commands.NewTimerCmd(flags, trackerApp).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
