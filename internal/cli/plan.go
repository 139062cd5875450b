package cli

import (
	"encoding/json"
	"fmt"

	"github.com/clarityhq/clarity/internal/planfile"
	"github.com/clarityhq/clarity/pkg/planning"
)

// loadPlan reads the configured plan file.
func loadPlan(o *IO, cfg *Config) (*planning.Plan, error) {
	o.Log.Debug().Str("path", cfg.PlanFileAbs).Msg("cli: loading plan")

	plan, err := planfile.Load(cfg.PlanFileAbs)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// savePlan writes the plan back to the configured plan file.
func savePlan(o *IO, cfg *Config, plan *planning.Plan) error {
	o.Log.Debug().Str("path", cfg.PlanFileAbs).Msg("cli: saving plan")

	return planfile.Save(cfg.PlanFileAbs, plan)
}

// validTaskFields are the names accepted by --field flags.
const validTaskFields = "id, title, status, priority, due, estimate"

// taskField extracts one named field from a task as a display string.
func taskField(task planning.Task, field string) (string, bool) {
	switch field {
	case "id":
		return task.ID, true
	case "title":
		return task.Title, true
	case "status":
		return string(task.Status), true
	case "priority":
		return string(task.Priority), true
	case "due":
		return task.DueDate, true
	case "estimate":
		if task.EstimateHours == nil {
			return "", true
		}

		return fmt.Sprintf("%g", *task.EstimateHours), true
	default:
		return "", false
	}
}

// printTasks renders a task list as text lines or JSON, optionally
// reduced to a single field.
func printTasks(o *IO, tasks []planning.Task, jsonOutput bool, field string) error {
	if field != "" {
		if _, ok := taskField(planning.Task{}, field); !ok {
			return fmt.Errorf("invalid field %q (valid: %s)", field, validTaskFields)
		}
	}

	if jsonOutput {
		if field != "" {
			values := make([]string, len(tasks))
			for i, task := range tasks {
				values[i], _ = taskField(task, field)
			}

			return printJSON(o, values)
		}

		return printJSON(o, tasks)
	}

	for _, task := range tasks {
		if field != "" {
			value, _ := taskField(task, field)
			o.Println(value)

			continue
		}

		o.Printf("%-12s %-4s %-12s %s\n", task.ID, task.Priority, task.Status, task.Title)
	}

	return nil
}

func printJSON(o *IO, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	o.Println(string(data))

	return nil
}
