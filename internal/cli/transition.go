package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/pkg/planning"
)

// StartCmd returns the start command.
func StartCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("start", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "start <id>",
		Short: "Move a task to in_progress",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execTransition(o, cfg, args, planning.StatusInProgress)
		},
	}
}

// DoneCmd returns the done command.
func DoneCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("done", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "done <id>",
		Short: "Move a task to done (terminal)",
		Long: `Move a task to done.

Done is terminal: a done task can never change status again.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execTransition(o, cfg, args, planning.StatusDone)
		},
	}
}

// BlockCmd returns the block command.
func BlockCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("block", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "block <id>",
		Short: "Move a task to blocked",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execTransition(o, cfg, args, planning.StatusBlocked)
		},
	}
}

// UnblockCmd returns the unblock command.
func UnblockCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("unblock", flag.ContinueOnError)
	fs.String("to", "todo", "Status to unblock into (todo|in_progress)")

	return &Command{
		Flags: fs,
		Usage: "unblock <id> [--to <status>]",
		Short: "Move a blocked task back to todo or in_progress",
		Exec: func(_ context.Context, o *IO, args []string) error {
			to, _ := fs.GetString("to")

			switch planning.Status(to) {
			case planning.StatusTodo, planning.StatusInProgress:
			default:
				return fmt.Errorf("%w: %s", ErrInvalidUnblockTo, to)
			}

			return execTransition(o, cfg, args, planning.Status(to))
		},
	}
}

// execTransition runs the single mutation the plan supports: one task,
// one status change, persisted atomically. On any error the plan file
// is left untouched.
func execTransition(o *IO, cfg *Config, args []string, to planning.Status) error {
	if len(args) == 0 || args[0] == "" {
		return ErrTaskIDRequired
	}

	id := args[0]

	plan, err := loadPlan(o, cfg)
	if err != nil {
		return err
	}

	if err := plan.Transition(id, to); err != nil {
		return err
	}

	if err := savePlan(o, cfg, plan); err != nil {
		return err
	}

	o.Printf("%s -> %s\n", id, to)

	return nil
}
