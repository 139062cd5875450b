package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/internal/planfile"
	"github.com/clarityhq/clarity/pkg/planning"
)

// NewCmd returns the new command.
func NewCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.StringP("title", "t", "", "Plan title")
	fs.StringP("desc", "d", "", "Plan description")
	fs.StringArray("task", nil, "Task as ID:TITLE (repeatable)")
	fs.StringArray("dep", nil, "Dependency as TASK:DEPENDS_ON (repeatable)")
	fs.StringP("output", "o", "", "Plan file to write (default: configured plan file)")
	fs.BoolP("interactive", "i", false, "Build the plan through an interview")

	return &Command{
		Flags: fs,
		Usage: "new -t <title> [flags]",
		Short: "Create a new plan file",
		Long: `Create a new plan file.

Flag mode takes the whole plan on the command line; interactive mode
runs a short interview instead.

Examples:
  clarity new -t "Sprint 12" --task api:"Build API" --task db:"Schema" --dep api:db
  clarity new --interactive
  clarity new -t "Hotfix" -o hotfix.json`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			title, _ := fs.GetString("title")
			desc, _ := fs.GetString("desc")
			taskSpecs, _ := fs.GetStringArray("task")
			depSpecs, _ := fs.GetStringArray("dep")
			output, _ := fs.GetString("output")
			interactive, _ := fs.GetBool("interactive")

			if interactive {
				answers, err := runPlanInterview(o)
				if err != nil {
					return err
				}

				title = answers.title
				desc = answers.description
				taskSpecs = answers.taskSpecs
				depSpecs = answers.depSpecs
			}

			if strings.TrimSpace(title) == "" {
				return ErrTitleRequired
			}

			tasks, err := parseTaskSpecs(taskSpecs)
			if err != nil {
				return err
			}

			deps, err := parseDepSpecs(depSpecs)
			if err != nil {
				return err
			}

			plan, err := planning.New(title, desc, tasks, deps)
			if err != nil {
				return err
			}

			path := cfg.PlanFileAbs
			if output != "" {
				path = output
				if !filepath.IsAbs(path) {
					path = filepath.Join(cfg.EffectiveCwd, path)
				}
			}

			if err := savePlanAt(o, path, plan); err != nil {
				return err
			}

			o.Printf("created plan %q with %d tasks: %s\n", plan.Title(), plan.Len(), path)

			return nil
		},
	}
}

// parseTaskSpecs turns ID:TITLE strings into todo/P2 tasks.
func parseTaskSpecs(specs []string) ([]planning.Task, error) {
	tasks := make([]planning.Task, 0, len(specs))

	for _, spec := range specs {
		id, title, ok := strings.Cut(spec, ":")

		id = strings.TrimSpace(id)
		title = strings.TrimSpace(title)

		if !ok || id == "" || title == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTaskSpec, spec)
		}

		task, err := planning.NewTask(id, title, "", planning.StatusTodo, planning.PriorityP2)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// parseDepSpecs turns TASK:DEPENDS_ON strings into dependency edges.
func parseDepSpecs(specs []string) ([]planning.Dependency, error) {
	deps := make([]planning.Dependency, 0, len(specs))

	for _, spec := range specs {
		taskID, dependsOn, ok := strings.Cut(spec, ":")

		taskID = strings.TrimSpace(taskID)
		dependsOn = strings.TrimSpace(dependsOn)

		if !ok || taskID == "" || dependsOn == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDepSpec, spec)
		}

		dep, err := planning.NewDependency(taskID, dependsOn)
		if err != nil {
			return nil, err
		}

		deps = append(deps, dep)
	}

	return deps, nil
}

func savePlanAt(o *IO, path string, plan *planning.Plan) error {
	o.Log.Debug().Str("path", path).Msg("cli: saving plan")

	return planfile.Save(path, plan)
}
