package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// HabitCmd implements the taskgamer habit command group.
type HabitCmd struct {
	flags *Flags
	app   *tracker.App

	// create flags
	title       string
	description string
	category    string
	frequency   string
	reminderDay int

	// toggle flags
	toggleDate string
}

// NewHabitCmd creates a new habit command.
func NewHabitCmd(flags *Flags, app *tracker.App) *HabitCmd {
	return &HabitCmd{flags: flags, app: app}
}

// Register adds the habit command to the application.
func (cmd *HabitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "habit",
		Usage: "Manage recurring habits",
		Description: `Habit commands for recurring routines.

Daily habits occur every day. Weekly habits need a reminder day 0-6
(Sunday is 0); monthly habits need a day of month 1-31.

Examples:
  taskgamer habit create --title "Morning run" --frequency daily
  taskgamer habit create --title "Review week" --frequency weekly --reminder-day 5
  taskgamer habit toggle <id> --date 2026-08-28`,
		Commands: []*cli.Command{
			cmd.createCmd(),
			cmd.listCmd(),
			cmd.toggleCmd(),
			cmd.streakCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *HabitCmd) createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a habit",
		UsageText: "taskgamer habit create --title <title> [--frequency <freq>] [--reminder-day <n>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the habit",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "category label",
				Value:       "health",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "frequency",
				Aliases:     []string{"f"},
				Usage:       "recurrence frequency (daily, weekly, monthly)",
				Value:       string(habit.FrequencyDaily),
				Destination: &cmd.frequency,
			},
			&cli.IntFlag{
				Name:        "reminder-day",
				Usage:       "weekday 0-6 for weekly, day of month 1-31 for monthly",
				Destination: &cmd.reminderDay,
			},
		},
		Action: cmd.runCreate,
	}
}

func (cmd *HabitCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List habits",
		UsageText: "taskgamer habit list",
		Action:    cmd.runList,
	}
}

func (cmd *HabitCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Toggle a habit's completion for a day",
		UsageText: "taskgamer habit toggle <id> [--date <date>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Usage:       "day to toggle (YYYY-MM-DD, defaults to today)",
				Destination: &cmd.toggleDate,
			},
		},
		Action: cmd.runToggle,
	}
}

func (cmd *HabitCmd) streakCmd() *cli.Command {
	return &cli.Command{
		Name:      "streak",
		Usage:     "Set a habit's streak counter",
		UsageText: "taskgamer habit streak <id> <count>",
		Action:    cmd.runStreak,
	}
}

func (cmd *HabitCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a habit",
		UsageText: "taskgamer habit delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *HabitCmd) runCreate(ctx context.Context, c *cli.Command) error {
	h := habit.Habit{
		Title:       cmd.title,
		Description: cmd.description,
		Category:    cmd.category,
		Frequency:   habit.Frequency(cmd.frequency),
	}
	if c.IsSet("reminder-day") {
		day := cmd.reminderDay
		h.ReminderDay = &day
	}

	created, err := cmd.app.Habits.Create(ctx, h)
	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, created)
}

func (cmd *HabitCmd) runList(ctx context.Context, c *cli.Command) error {
	habits, err := cmd.app.Habits.List(ctx)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if err := iojson.WriteLine(c.Root().Writer, h); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *HabitCmd) runToggle(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer habit toggle <id>")
	}

	date, err := parseDate(cmd.toggleDate, time.Now())
	if err != nil {
		return err
	}

	h, completed, err := cmd.app.Habits.ToggleCompletion(ctx, c.Args().Get(0), date)
	if err != nil {
		return err
	}

	result := struct {
		Habit     habit.Habit `json:"habit"`
		Completed bool        `json:"completed"`
	}{Habit: h, Completed: completed}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result)
}

func (cmd *HabitCmd) runStreak(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskgamer habit streak <id> <count>")
	}

	streak, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid streak %q: expected a number", c.Args().Get(1))
	}

	h, err := cmd.app.Habits.SetStreak(ctx, c.Args().Get(0), streak)
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, h)
}

func (cmd *HabitCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer habit delete <id>")
	}

	if err := cmd.app.Habits.Delete(ctx, c.Args().Get(0)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "deleted")
	return nil
}
