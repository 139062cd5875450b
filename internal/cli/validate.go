package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// ValidateCmd returns the validate command.
func ValidateCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "validate",
		Short: "Check the plan file against all invariants",
		Long: `Load the plan file and run the full validation: unique task
IDs, resolvable dependency edges, no self-loops, and an acyclic graph.

Prints "plan is valid" on success. On failure the structured error is
printed and the exit code is 1.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			o.Printf("plan is valid: %d tasks, %d dependencies\n", plan.Len(), len(plan.Dependencies()))

			return nil
		},
	}
}
