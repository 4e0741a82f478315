package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// TimelineCmd implements the taskgamer timeline command group.
type TimelineCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewTimelineCmd creates a new timeline command.
func NewTimelineCmd(flags *Flags, app *tracker.App) *TimelineCmd {
	return &TimelineCmd{flags: flags, app: app}
}

// Register adds the timeline command to the application.
func (cmd *TimelineCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "timeline",
		Usage: "View the merged timeline",
		Description: `Merges tasks, goals, expanded habit occurrences, and events
into one chronological stream.

Examples:
  taskgamer timeline show
  taskgamer timeline upcoming
  taskgamer timeline toggle habit-<id>-2026-08-28`,
		Commands: []*cli.Command{
			cmd.showCmd(),
			cmd.upcomingCmd(),
			cmd.toggleCmd(),
		},
	})

	return app
}

func (cmd *TimelineCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "List all timeline items in the calendar window",
		UsageText: "taskgamer timeline show",
		Action:    cmd.runShow,
	}
}

func (cmd *TimelineCmd) upcomingCmd() *cli.Command {
	return &cli.Command{
		Name:      "upcoming",
		Usage:     "List the next upcoming items",
		UsageText: "taskgamer timeline upcoming",
		Action:    cmd.runUpcoming,
	}
}

func (cmd *TimelineCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Toggle a habit occurrence by its timeline item ID",
		UsageText: "taskgamer timeline toggle <item-id>",
		Action:    cmd.runToggle,
	}
}

func (cmd *TimelineCmd) runShow(ctx context.Context, c *cli.Command) error {
	items, err := cmd.app.Timeline.Calendar(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := iojson.WriteLine(c.Root().Writer, item); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *TimelineCmd) runUpcoming(ctx context.Context, c *cli.Command) error {
	items, err := cmd.app.Timeline.Upcoming(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := iojson.WriteLine(c.Root().Writer, item); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *TimelineCmd) runToggle(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer timeline toggle <item-id>")
	}

	h, completed, err := cmd.app.Timeline.ToggleOccurrence(ctx, c.Args().Get(0))
	if err != nil {
		return err
	}

	result := struct {
		HabitID   string `json:"habitId"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}{HabitID: h.ID, Title: h.Title, Completed: completed}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result)
}
