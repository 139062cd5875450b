package planning

import (
	"strings"
	"time"
)

// Task is a single unit of work inside a plan. A task has no identity
// outside the plan that owns it.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`

	// DueDate is an RFC3339 timestamp; empty means no due date.
	DueDate string `json:"due_date,omitempty"`

	// EstimateHours is nil when no estimate is set. A present estimate
	// is never negative.
	EstimateHours *float64 `json:"estimate_hours,omitempty"`

	Tags []string `json:"tags"`
}

// NewTask creates a task with a validated title. The title is stored
// trimmed; an empty or whitespace-only title fails.
func NewTask(id, title, description string, status Status, priority Priority) (Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}

	return Task{
		ID:          id,
		Title:       trimmed,
		Description: description,
		Status:      status,
		Priority:    priority,
		Tags:        []string{},
	}, nil
}

// Transition moves the task to a new status. On an illegal transition
// the task is left unchanged and an InvalidTransitionError names the
// legal successors. On success only Status changes.
func (t *Task) Transition(to Status) error {
	if !t.Status.CanTransitionTo(to) {
		return &InvalidTransitionError{
			From:  t.Status,
			To:    to,
			Valid: t.Status.ValidTransitions(),
		}
	}

	t.Status = to

	return nil
}

// IsOverdue reports whether the task's due date has passed. Done tasks,
// tasks without a due date, and tasks with an unparseable due date are
// never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone || t.DueDate == "" {
		return false
	}

	due, err := time.Parse(time.RFC3339, t.DueDate)
	if err != nil {
		return false
	}

	return due.Before(now)
}

// validate re-runs the task-level invariants. Construction through
// NewTask guarantees them, but deserialized tasks bypass the constructor
// and must be checked again.
func (t *Task) validate() error {
	trimmed := strings.TrimSpace(t.Title)
	if trimmed == "" {
		return &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}

	t.Title = trimmed

	if t.EstimateHours != nil && *t.EstimateHours < 0 {
		return &ValidationError{Field: "estimate_hours", Reason: "estimate cannot be negative"}
	}

	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status: " + string(t.Status)}
	}

	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "unknown priority: " + string(t.Priority)}
	}

	if t.Tags == nil {
		t.Tags = []string{}
	}

	return nil
}

// clone returns a copy of the task that shares no mutable state with
// the receiver.
func (t Task) clone() Task {
	c := t

	if t.EstimateHours != nil {
		estimate := *t.EstimateHours
		c.EstimateHours = &estimate
	}

	c.Tags = make([]string, len(t.Tags))
	copy(c.Tags, t.Tags)

	return c
}

// Dependency is a directed edge meaning TaskID cannot be ready until
// DependsOn is done.
type Dependency struct {
	TaskID    string `json:"task_id"`
	DependsOn string `json:"depends_on"`
}

// NewDependency creates an edge between two distinct tasks. Equal
// endpoints fail with SelfDependencyError. The self-loop check is
// re-run at plan construction because deserialized edges bypass this
// constructor.
func NewDependency(taskID, dependsOn string) (Dependency, error) {
	if taskID == dependsOn {
		return Dependency{}, &SelfDependencyError{TaskID: taskID}
	}

	return Dependency{TaskID: taskID, DependsOn: dependsOn}, nil
}
