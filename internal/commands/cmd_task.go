package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// TaskCmd implements the taskgamer task command group.
type TaskCmd struct {
	flags *Flags
	app   *tracker.App

	// create/edit flags
	title       string
	description string
	category    string
	due         string

	// list flags
	listStatus   string
	listCategory string
	listSearch   string
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags, app *tracker.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Description: `Task commands for tracking day-to-day work items.

Examples:
  taskgamer task create --title "Ship release" --category work --due 2026-09-01
  taskgamer task list --status pending
  taskgamer task status <id> completed
  taskgamer task delete <id>`,
		Commands: []*cli.Command{
			cmd.createCmd(),
			cmd.listCmd(),
			cmd.showCmd(),
			cmd.editCmd(),
			cmd.statusCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *TaskCmd) createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a task",
		UsageText: "taskgamer task create --title <title> [--description <desc>] [--category <cat>] [--due <date>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the task",
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
				Usage:       "category label (work, personal, ...)",
				Value:       "personal",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date (YYYY-MM-DD)",
				Destination: &cmd.due,
			},
		},
		Action: cmd.runCreate,
	}
}

func (cmd *TaskCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks",
		UsageText: "taskgamer task list [--status <status>] [--category <glob>] [--search <text>]",
		Description: `Lists tasks as JSON lines, actionable work first.

Examples:
  taskgamer task list
  taskgamer task list --status pending
  taskgamer task list --category "work/*" --search review`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (pending, in-progress, completed)",
				Destination: &cmd.listStatus,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "filter by category glob pattern",
				Destination: &cmd.listCategory,
			},
			&cli.StringFlag{
				Name:        "search",
				Usage:       "filter by title/description substring",
				Destination: &cmd.listSearch,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *TaskCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a task",
		UsageText: "taskgamer task show <id>",
		Action:    cmd.runShow,
	}
}

func (cmd *TaskCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task",
		UsageText: "taskgamer task edit <id> [--title <title>] [--description <desc>] [--category <cat>] [--due <date>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "new category",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "new due date (YYYY-MM-DD)",
				Destination: &cmd.due,
			},
		},
		Action: cmd.runEdit,
	}
}

func (cmd *TaskCmd) statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Change a task's status",
		UsageText: "taskgamer task status <id> <pending|in-progress|completed>",
		Action:    cmd.runStatus,
	}
}

func (cmd *TaskCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task",
		UsageText: "taskgamer task delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *TaskCmd) runCreate(ctx context.Context, c *cli.Command) error {
	due, err := parseDate(cmd.due, time.Now())
	if err != nil {
		return err
	}

	t, err := cmd.app.Tasks.Create(ctx, task.Task{
		Title:       cmd.title,
		Description: cmd.description,
		Category:    cmd.category,
		DueDate:     due,
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, t)
}

func (cmd *TaskCmd) runList(ctx context.Context, c *cli.Command) error {
	filter := tracker.TaskFilter{
		Category: cmd.listCategory,
		Search:   cmd.listSearch,
	}

	if cmd.listStatus != "" {
		status := task.Status(cmd.listStatus)
		if !status.Valid() {
			return fmt.Errorf("invalid status %q: must be one of pending, in-progress, completed", cmd.listStatus)
		}
		filter.Status = status
	}

	tasks, err := cmd.app.Tasks.List(ctx, filter)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if err := iojson.WriteLine(c.Root().Writer, t); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *TaskCmd) runShow(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer task show <id>")
	}

	t, err := cmd.app.Tasks.Get(ctx, c.Args().Get(0))
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, t)
}

func (cmd *TaskCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer task edit <id>")
	}

	var edit tracker.TaskEdit
	if c.IsSet("title") {
		edit.Title = &cmd.title
	}
	if c.IsSet("description") {
		edit.Description = &cmd.description
	}
	if c.IsSet("category") {
		edit.Category = &cmd.category
	}
	if c.IsSet("due") {
		due, err := parseDate(cmd.due, time.Time{})
		if err != nil {
			return err
		}
		edit.DueDate = &due
	}

	t, err := cmd.app.Tasks.Edit(ctx, c.Args().Get(0), edit)
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, t)
}

func (cmd *TaskCmd) runStatus(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskgamer task status <id> <status>")
	}

	t, err := cmd.app.Tasks.UpdateStatus(ctx, c.Args().Get(0), task.Status(c.Args().Get(1)))
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, t)
}

func (cmd *TaskCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer task delete <id>")
	}

	if err := cmd.app.Tasks.Delete(ctx, c.Args().Get(0)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "deleted")
	return nil
}

// parseDate parses a YYYY-MM-DD flag value, returning fallback when the
// value is empty.
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}
