package cli

import (
	"context"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/pkg/planning"
	"github.com/clarityhq/clarity/pkg/progress"
)

// ProgressCmd returns the progress command.
func ProgressCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("progress", flag.ContinueOnError)
	fs.String("format", "", "Output format: terminal, json, or markdown (default from config)")

	return &Command{
		Flags: fs,
		Usage: "progress [flags]",
		Short: "Show a completion dashboard for the plan",
		Long: `Show a completion dashboard for the plan.

Examples:
  clarity progress                     # Progress bar and counts
  clarity progress --format markdown   # Markdown tables
  clarity progress --format json       # Titled, timestamped dashboard as JSON`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			name, _ := fs.GetString("format")
			if name == "" {
				name = cfg.Format
			}

			format, err := progress.ParseFormat(name)
			if err != nil {
				return err
			}

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			metrics := planMetrics(plan)

			// JSON consumers get the full dashboard envelope; the
			// human formats render the metrics alone.
			if format == progress.FormatJSON {
				dashboard := progress.NewDashboard(plan.Title(), metrics, nil, time.Now())

				return printJSON(o, dashboard)
			}

			out, err := progress.Render(metrics, format)
			if err != nil {
				return err
			}

			o.Println(out)

			return nil
		},
	}
}

// planMetrics maps plan statuses onto progress statuses and counts
// them. The mapping stays here so the two packages remain independent.
func planMetrics(plan *planning.Plan) progress.Metrics {
	tasks := plan.Tasks()
	statuses := make([]progress.Status, len(tasks))

	for i, task := range tasks {
		switch task.Status {
		case planning.StatusDone:
			statuses[i] = progress.StatusCompleted
		case planning.StatusInProgress:
			statuses[i] = progress.StatusInProgress
		case planning.StatusBlocked:
			statuses[i] = progress.StatusBlocked
		default:
			statuses[i] = progress.StatusNotStarted
		}
	}

	return progress.FromStatuses(statuses)
}
