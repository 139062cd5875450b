package cli

import (
	"context"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/pkg/planning"
)

// ReadyCmd returns the ready command.
func ReadyCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("ready", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.Int("limit", 0, "Maximum tasks to show (0 = no limit)")
	fs.String("field", "", "Output only this field ("+validTaskFields+")")

	return &Command{
		Flags: fs,
		Usage: "ready [flags]",
		Short: "List tasks that can be worked on now",
		Long: `List tasks that can be worked on now.

A task is ready if:
  - Status is todo or in_progress
  - Every task it depends on is done

Output sorted by priority (P0 first), then by ID.

Examples:
  clarity ready                        # List all ready tasks
  clarity ready --limit 1              # Show only the top priority task
  clarity ready --field id --limit 1   # Get just the ID of the top task
  clarity ready --json                 # Output as JSON array
  clarity ready --json --field id      # JSON array of IDs: ["id1", "id2"]

  # Start the highest priority ready task:
  clarity start $(clarity ready --field id --limit 1)`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			limit, _ := fs.GetInt("limit")
			field, _ := fs.GetString("field")

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			ready := plan.ReadyTasks()

			slices.SortFunc(ready, func(a, b planning.Task) int {
				if a.Priority.Rank() != b.Priority.Rank() {
					return a.Priority.Rank() - b.Priority.Rank()
				}

				return strings.Compare(a.ID, b.ID)
			})

			if limit > 0 && len(ready) > limit {
				ready = ready[:limit]
			}

			return printTasks(o, ready, jsonOutput, field)
		},
	}
}
