package cli

import (
	"context"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/pkg/planning"
)

// ShowCmd returns the show command.
func ShowCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON")

	return &Command{
		Flags: fs,
		Usage: "show [id] [flags]",
		Short: "Show the plan summary or a single task",
		Long: `Show the plan summary, or the full details of one task.

Examples:
  clarity show             # Plan title, counts, completion, estimate
  clarity show api-1       # One task card
  clarity show --json      # Whole plan as JSON`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			jsonOutput, _ := fs.GetBool("json")

			plan, err := loadPlan(o, cfg)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return showPlan(o, plan, jsonOutput)
			}

			return showTask(o, plan, args[0], jsonOutput)
		},
	}
}

func showPlan(o *IO, plan *planning.Plan, jsonOutput bool) error {
	if jsonOutput {
		data, err := plan.ToJSON()
		if err != nil {
			return err
		}

		o.Println(string(data))

		return nil
	}

	var done, inProgress, blocked, todo int

	for _, task := range plan.Tasks() {
		switch task.Status {
		case planning.StatusDone:
			done++
		case planning.StatusInProgress:
			inProgress++
		case planning.StatusBlocked:
			blocked++
		default:
			todo++
		}
	}

	o.Println("Plan:", plan.Title())

	if plan.Description() != "" {
		o.Println("Description:", plan.Description())
	}

	o.Printf("Tasks: %d (todo %d, in progress %d, blocked %d, done %d)\n",
		plan.Len(), todo, inProgress, blocked, done)
	o.Printf("Completion: %.1f%%\n", plan.CompletionPercentage())

	if estimate := plan.TotalEstimateHours(); estimate > 0 {
		o.Printf("Total estimate: %gh\n", estimate)
	}

	return nil
}

func showTask(o *IO, plan *planning.Plan, id string, jsonOutput bool) error {
	task, ok := plan.Task(id)
	if !ok {
		return &planning.ValidationError{Field: "task_id", Reason: "no task with id: " + id}
	}

	if jsonOutput {
		return printJSON(o, task)
	}

	o.Println("ID:      ", task.ID)
	o.Println("Title:   ", task.Title)
	o.Println("Status:  ", task.Status)
	o.Println("Priority:", task.Priority)

	if task.DueDate != "" {
		marker := ""
		if task.IsOverdue(time.Now()) {
			marker = "  OVERDUE"
		}

		o.Println("Due:     ", task.DueDate+marker)
	}

	if task.EstimateHours != nil {
		o.Printf("Estimate: %gh\n", *task.EstimateHours)
	}

	if len(task.Tags) > 0 {
		o.Println("Tags:    ", strings.Join(task.Tags, ", "))
	}

	if deps := dependsOn(plan, task.ID); len(deps) > 0 {
		o.Println("Depends: ", strings.Join(deps, ", "))
	}

	if task.Description != "" {
		o.Println()
		o.Println(task.Description)
	}

	return nil
}

func dependsOn(plan *planning.Plan, id string) []string {
	var deps []string

	for _, dep := range plan.Dependencies() {
		if dep.TaskID == id {
			deps = append(deps, dep.DependsOn)
		}
	}

	return deps
}
