package cli

import (
	"context"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/pkg/planning"
)

// OverdueCmd returns the overdue command.
func OverdueCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("overdue", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.String("field", "", "Output only this field ("+validTaskFields+")")

	return &Command{
		Flags: fs,
		Usage: "overdue [flags]",
		Short: "List tasks past their due date",
		Long: `List tasks whose due date is in the past.

Done tasks are never overdue. Tasks without a due date are skipped. A
due date that does not parse as RFC3339 can never trigger, so it is
reported as a warning and the exit code is 1.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			field, _ := fs.GetString("field")

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			warnBadDueDates(o, plan)

			return printTasks(o, plan.OverdueTasks(time.Now()), jsonOutput, field)
		},
	}
}

// warnBadDueDates flags open tasks whose due date cannot be parsed.
// Such tasks silently drop out of overdue checks, which is exactly the
// kind of quiet data problem a reader should be told about.
func warnBadDueDates(o *IO, plan *planning.Plan) {
	for _, task := range plan.Tasks() {
		if task.Status == planning.StatusDone || task.DueDate == "" {
			continue
		}

		if _, err := time.Parse(time.RFC3339, task.DueDate); err != nil {
			o.Warn(
				fmt.Sprintf("task %s has unparseable due_date %q", task.ID, task.DueDate),
				"fix it to RFC3339 so overdue checks include the task",
			)
		}
	}
}
