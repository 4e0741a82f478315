package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taskgamer/taskgamer/internal/tracker"
	"github.com/taskgamer/taskgamer/pkg/iojson"
)

// ReportCmd implements the taskgamer report command.
type ReportCmd struct {
	flags *Flags
	app   *tracker.App

	// export flags
	output string
}

// NewReportCmd creates a new report command.
func NewReportCmd(flags *Flags, app *tracker.App) *ReportCmd {
	return &ReportCmd{flags: flags, app: app}
}

// Register adds the report command to the application.
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "report",
		Usage:     "Export a productivity report",
		UsageText: "taskgamer report [--output <file>]",
		Description: `Builds the full productivity report and writes it as JSON,
to stdout by default or to a file with --output.

Examples:
  taskgamer report
  taskgamer report --output report.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the report to a file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReportCmd) run(ctx context.Context, c *cli.Command) error {
	report, err := cmd.app.Insights.BuildReport(ctx, time.Now())
	if err != nil {
		return err
	}

	if cmd.output == "" {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report)
	}

	bits, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(cmd.output, bits, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "report written to %s\n", cmd.output)
	return nil
}
