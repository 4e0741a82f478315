package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// GoalCmd implements the taskgamer goal command group.
type GoalCmd struct {
	flags *Flags
	app   *tracker.App

	// create/edit flags
	title       string
	description string
	category    string
	deadline    string
	milestones  string
}

// NewGoalCmd creates a new goal command.
func NewGoalCmd(flags *Flags, app *tracker.App) *GoalCmd {
	return &GoalCmd{flags: flags, app: app}
}

// Register adds the goal command to the application.
func (cmd *GoalCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "goal",
		Usage: "Manage goals and milestones",
		Description: `Goal commands for tracking long-running objectives.

Milestones are given one per line; toggling the last open milestone
completes the goal.

Examples:
  taskgamer goal create --title "Run a marathon" --deadline 2026-12-01
  taskgamer goal milestone <goal-id> <milestone-id>
  taskgamer goal status <id> in-progress`,
		Commands: []*cli.Command{
			cmd.createCmd(),
			cmd.listCmd(),
			cmd.showCmd(),
			cmd.editCmd(),
			cmd.statusCmd(),
			cmd.milestoneCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *GoalCmd) createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a goal",
		UsageText: "taskgamer goal create --title <title> [--deadline <date>] [--milestones <lines>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the goal",
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
				Value:       "personal",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "deadline",
				Usage:       "deadline date (YYYY-MM-DD)",
				Destination: &cmd.deadline,
			},
			&cli.StringFlag{
				Name:        "milestones",
				Aliases:     []string{"m"},
				Usage:       "newline-separated milestone texts",
				Destination: &cmd.milestones,
			},
		},
		Action: cmd.runCreate,
	}
}

func (cmd *GoalCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List goals",
		UsageText: "taskgamer goal list",
		Action:    cmd.runList,
	}
}

func (cmd *GoalCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a goal",
		UsageText: "taskgamer goal show <id>",
		Action:    cmd.runShow,
	}
}

func (cmd *GoalCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a goal",
		UsageText: "taskgamer goal edit <id> [--title <title>] [--deadline <date>] [--milestones <lines>]",
		Description: `Applies a partial update. Replacing milestones resets their
completion and recomputes progress.`,
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
				Name:        "deadline",
				Usage:       "new deadline (YYYY-MM-DD)",
				Destination: &cmd.deadline,
			},
			&cli.StringFlag{
				Name:        "milestones",
				Aliases:     []string{"m"},
				Usage:       "replacement milestone texts, one per line",
				Destination: &cmd.milestones,
			},
		},
		Action: cmd.runEdit,
	}
}

func (cmd *GoalCmd) statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Change a goal's status",
		UsageText: "taskgamer goal status <id> <not-started|in-progress|completed>",
		Action:    cmd.runStatus,
	}
}

func (cmd *GoalCmd) milestoneCmd() *cli.Command {
	return &cli.Command{
		Name:      "milestone",
		Aliases:   []string{"ms"},
		Usage:     "Toggle a milestone's completion",
		UsageText: "taskgamer goal milestone <goal-id> <milestone-id>",
		Action:    cmd.runMilestone,
	}
}

func (cmd *GoalCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a goal",
		UsageText: "taskgamer goal delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *GoalCmd) runCreate(ctx context.Context, c *cli.Command) error {
	deadline, err := parseDate(cmd.deadline, time.Now())
	if err != nil {
		return err
	}

	g, err := cmd.app.Goals.Create(ctx, goal.Goal{
		Title:       cmd.title,
		Description: cmd.description,
		Category:    cmd.category,
		Deadline:    deadline,
		Milestones:  tracker.ParseMilestones(cmd.milestones),
	})
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, g)
}

func (cmd *GoalCmd) runList(ctx context.Context, c *cli.Command) error {
	goals, err := cmd.app.Goals.List(ctx)
	if err != nil {
		return err
	}

	for _, g := range goals {
		if err := iojson.WriteLine(c.Root().Writer, g); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *GoalCmd) runShow(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer goal show <id>")
	}

	g, err := cmd.app.Goals.Get(ctx, c.Args().Get(0))
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, g)
}

func (cmd *GoalCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer goal edit <id>")
	}

	var edit tracker.GoalEdit
	if c.IsSet("title") {
		edit.Title = &cmd.title
	}
	if c.IsSet("description") {
		edit.Description = &cmd.description
	}
	if c.IsSet("category") {
		edit.Category = &cmd.category
	}
	if c.IsSet("deadline") {
		deadline, err := parseDate(cmd.deadline, time.Time{})
		if err != nil {
			return err
		}
		edit.Deadline = &deadline
	}
	if c.IsSet("milestones") {
		edit.Milestones = tracker.ParseMilestones(cmd.milestones)
	}

	g, err := cmd.app.Goals.Edit(ctx, c.Args().Get(0), edit)
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, g)
}

func (cmd *GoalCmd) runStatus(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskgamer goal status <id> <status>")
	}

	g, err := cmd.app.Goals.UpdateStatus(ctx, c.Args().Get(0), goal.Status(c.Args().Get(1)))
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, g)
}

func (cmd *GoalCmd) runMilestone(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: taskgamer goal milestone <goal-id> <milestone-id>")
	}

	g, err := cmd.app.Goals.ToggleMilestone(ctx, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, g)
}

func (cmd *GoalCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: taskgamer goal delete <id>")
	}

	if err := cmd.app.Goals.Delete(ctx, c.Args().Get(0)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "deleted")
	return nil
}
