package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// BlockedCmd returns the blocked command.
func BlockedCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("blocked", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.String("field", "", "Output only this field ("+validTaskFields+")")

	return &Command{
		Flags: fs,
		Usage: "blocked [flags]",
		Short: "List tasks whose status is blocked",
		Long: `List tasks whose status is blocked.

This is the explicit status flag set with "clarity block", not the
derived "waiting on an unfinished dependency" notion - use "clarity
ready" for that.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			field, _ := fs.GetString("field")

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			return printTasks(o, plan.BlockedTasks(), jsonOutput, field)
		},
	}
}
