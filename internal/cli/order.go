package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// OrderCmd returns the order command.
func OrderCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.String("field", "", "Output only this field ("+validTaskFields+")")

	return &Command{
		Flags: fs,
		Usage: "order [flags]",
		Short: "Print tasks in dependency-respecting execution order",
		Long: `Print tasks in an order where every task appears after
everything it depends on. Ties break on plan insertion order, so the
output is stable for a given plan file.

Examples:
  clarity order                 # One task per line, prerequisites first
  clarity order --field id      # Just the IDs
  clarity order --json          # JSON array of tasks`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			field, _ := fs.GetString("field")

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			order, err := plan.TopologicalOrder()
			if err != nil {
				return err
			}

			return printTasks(o, order, jsonOutput, field)
		},
	}
}
