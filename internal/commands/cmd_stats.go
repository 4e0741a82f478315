package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/core/styles"
	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// StatsCmd implements the taskgamer stats command group.
type StatsCmd struct {
	flags *Flags
	app   *tracker.App

	// output flags
	asJSON bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *tracker.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "stats",
		Usage: "Show the productivity dashboard",
		Description: `Renders the headline productivity numbers: task and goal
counts, habit streaks, focus time, today's score, and the weekly
completion chart.

Examples:
  taskgamer stats
  taskgamer stats --json
  taskgamer stats trend`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the dashboard as JSON instead of styled text",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.runDashboard,
		Commands: []*cli.Command{
			cmd.trendCmd(),
		},
	})

	return app
}

func (cmd *StatsCmd) trendCmd() *cli.Command {
	return &cli.Command{
		Name:      "trend",
		Usage:     "Show the 7-day score and completion trends",
		UsageText: "taskgamer stats trend",
		Action:    cmd.runTrend,
	}
}

func (cmd *StatsCmd) runDashboard(ctx context.Context, c *cli.Command) error {
	now := time.Now()

	dash, err := cmd.app.Insights.Dashboard(ctx, now)
	if err != nil {
		return err
	}

	if cmd.asJSON {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, dash)
	}

	w := c.Root().Writer
	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	var b strings.Builder

	b.WriteString(styles.HeaderStyle.Render("Today"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", styles.LabelStyle.Render("score:"), styles.Bar(dash.TodayScore)))

	b.WriteString(styles.HeaderStyle.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		styles.KV("pending", dash.Tasks.Pending),
		styles.KV("in progress", dash.Tasks.InProgress),
		styles.KV("completed", dash.Tasks.Completed),
	))

	b.WriteString(styles.HeaderStyle.Render("Goals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		styles.KV("active", dash.Goals.Active),
		styles.KV("completed", dash.Goals.Completed),
		styles.KV("success rate", fmt.Sprintf("%.1f%%", dash.GoalSuccessRate)),
	))

	b.WriteString(styles.HeaderStyle.Render("Habits"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", styles.KV("best streak", dash.MaxHabitStreak)))

	b.WriteString(styles.HeaderStyle.Render("Focus"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		styles.KV("total minutes", dash.Focus.TotalMinutes),
		styles.KV("sessions", dash.Focus.TotalSessions),
		styles.KV("today", dash.Focus.DailySessions),
	))

	b.WriteString(styles.HeaderStyle.Render("Completed this week"))
	b.WriteString("\n")
	for i, day := range weekdays {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.LabelStyle.Render(day),
			styles.ValueStyle.Render(strings.Repeat("▪", dash.CompletedThisWeek[i])),
		))
	}

	_, err = fmt.Fprintln(w, styles.SectionStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

func (cmd *StatsCmd) runTrend(ctx context.Context, c *cli.Command) error {
	now := time.Now()

	scores, err := cmd.app.Insights.ScoreTrend(ctx, now)
	if err != nil {
		return err
	}
	completion, err := cmd.app.Insights.CompletionTrend(ctx, now)
	if err != nil {
		return err
	}

	result := struct {
		Score      []tracker.TrendPoint `json:"score"`
		Completion []tracker.TrendPoint `json:"completion"`
	}{Score: scores, Completion: completion}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result)
}
