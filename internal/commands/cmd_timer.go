package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/focus"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// TimerCmd implements the taskgamer timer command group.
type TimerCmd struct {
	flags *Flags
	app   *tracker.App

	// run flags
	workMinutes  int
	breakMinutes int
	quiet        bool
}

// NewTimerCmd creates a new timer command.
func NewTimerCmd(flags *Flags, app *tracker.App) *TimerCmd {
	return &TimerCmd{flags: flags, app: app}
}

// Register adds the timer command to the application.
func (cmd *TimerCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "timer",
		Usage: "Run the pomodoro focus timer",
		Description: `Runs a foreground focus countdown. Completed work sessions are
recorded into the focus stats; interrupting with Ctrl-C leaves the
in-progress marker set so the next run can spot it.

Durations move in 5 minute steps: work 5-180, break 5-30.

Examples:
  taskgamer timer run
  taskgamer timer run --work 50 --break 10
  taskgamer timer stats`,
		Commands: []*cli.Command{
			cmd.runCmd(),
			cmd.statsCmd(),
			cmd.resetCmd(),
		},
	})

	return app
}

func (cmd *TimerCmd) runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run one focus session in the foreground",
		UsageText: "taskgamer timer run [--work <minutes>] [--break <minutes>]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "work",
				Usage:       "work session length in minutes",
				Destination: &cmd.workMinutes,
			},
			&cli.IntFlag{
				Name:        "break",
				Usage:       "break length in minutes",
				Destination: &cmd.breakMinutes,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "suppress the per-minute countdown output",
				Destination: &cmd.quiet,
			},
		},
		Action: cmd.runRun,
	}
}

func (cmd *TimerCmd) statsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show focus session stats",
		UsageText: "taskgamer timer stats",
		Action:    cmd.runStats,
	}
}

func (cmd *TimerCmd) resetCmd() *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "Reset the timer and clear the in-progress marker",
		UsageText: "taskgamer timer reset",
		Action:    cmd.runReset,
	}
}

func (cmd *TimerCmd) runRun(ctx context.Context, c *cli.Command) error {
	timer := cmd.app.Focus.Timer()

	if c.IsSet("work") {
		if err := timer.SetWorkMinutes(cmd.workMinutes); err != nil {
			return fmt.Errorf("set work minutes: %w", err)
		}
	}
	if c.IsSet("break") {
		if err := timer.SetBreakMinutes(cmd.breakMinutes); err != nil {
			return fmt.Errorf("set break minutes: %w", err)
		}
	}

	w := c.Root().Writer
	_, _ = fmt.Fprintf(w, "focus session started (%d minutes)\n", timer.WorkMinutes())

	lastMinute := -1
	onTick := func(remaining time.Duration, mode focus.Mode) {
		if cmd.quiet {
			return
		}
		minute := int(remaining.Minutes())
		if minute != lastMinute {
			lastMinute = minute
			_, _ = fmt.Fprintf(w, "%s: %s remaining\n", mode, remaining.Round(time.Minute))
		}
	}

	finished, err := cmd.app.Focus.Run(ctx, onTick)
	if err != nil {
		return err
	}

	if finished == focus.ModeFocus {
		_, _ = fmt.Fprintf(w, "focus session complete, break is %d minutes\n", timer.BreakMinutes())
	} else {
		_, _ = fmt.Fprintln(w, "break over, back to work")
	}

	return nil
}

func (cmd *TimerCmd) runStats(ctx context.Context, c *cli.Command) error {
	stats, err := cmd.app.Focus.Stats(ctx)
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, stats)
}

func (cmd *TimerCmd) runReset(ctx context.Context, c *cli.Command) error {
	if err := cmd.app.Focus.Reset(ctx); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "timer reset")
	return nil
}
