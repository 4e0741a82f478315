package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// EventCmd implements the taskgamer event command group.
type EventCmd struct {
	flags *Flags
	app   *tracker.App

	// create flags
	title       string
	description string
	category    string
	start       string
}

// NewEventCmd creates a new event command.
func NewEventCmd(flags *Flags, app *tracker.App) *EventCmd {
	return &EventCmd{flags: flags, app: app}
}

// Register adds the event command to the application.
func (cmd *EventCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "event",
		Usage: "Manage ad-hoc calendar events",
		Description: `Event commands for one-off calendar entries.

The categories task, goal, and habit are reserved: creating an event
with one of them creates that entity instead of an event.

Examples:
  taskgamer event create --title "Dentist" --start 2026-09-03
  taskgamer event create --title "Ship v2" --category task --start 2026-09-10`,
		Commands: []*cli.Command{
			cmd.createCmd(),
			cmd.listCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *EventCmd) createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create an event",
		UsageText: "taskgamer event create --title <title> [--category <cat>] [--start <date>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the event",
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
				Usage:       "category label (task, goal, and habit redirect)",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "start",
				Usage:       "start date (YYYY-MM-DD, defaults to today)",
				Destination: &cmd.start,
			},
		},
		Action: cmd.runCreate,
	}
}

func (cmd *EventCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List events",
		UsageText: "taskgamer event list",
		Action:    cmd.runList,
	}
}

func (cmd *EventCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete an event",
		UsageText: "taskgamer event delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *EventCmd) runCreate(ctx context.Context, c *cli.Command) error {
	start, err := parseDate(cmd.start, time.Now())
	if err != nil {
		return err
	}

	created, err := cmd.app.Events.Create(ctx, event.Event{
		Title:       cmd.title,
		Description: cmd.description,
		Category:    cmd.category,
		Start:       start,
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, created)
}

func (cmd *EventCmd) runList(ctx context.Context, c *cli.Command) error {
	events, err := cmd.app.Events.List(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		if err := iojson.WriteLine(c.Root().Writer, e); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *EventCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer event delete <id>")
	}

	if err := cmd.app.Events.Delete(ctx, c.Args().Get(0)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "deleted")
	return nil
}
