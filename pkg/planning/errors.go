package planning

import (
	"fmt"
	"strings"
)

// CyclicDependencyError reports a closed walk in the dependency graph.
// Cycle lists the offending task IDs in order; the first and last entry
// are the same task.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return "cyclic dependency detected: " + strings.Join(e.Cycle, " -> ")
}

// InvalidTransitionError reports a status change that the state machine
// does not permit. Valid lists the legal successors of From.
type InvalidTransitionError struct {
	From  Status
	To    Status
	Valid []Status
}

func (e *InvalidTransitionError) Error() string {
	valid := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		valid[i] = string(s)
	}

	if len(valid) == 0 {
		return fmt.Sprintf("invalid transition from %s to %s: %s is terminal", e.From, e.To, e.From)
	}

	return fmt.Sprintf("invalid transition from %s to %s (valid: %s)", e.From, e.To, strings.Join(valid, ", "))
}

// DuplicateIDError reports two tasks sharing an identifier within one plan.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return "duplicate task id: " + e.ID
}

// MissingDependencyError reports an edge referencing a task id that is
// absent from the plan. It carries the full edge so callers can surface
// both endpoints without re-deriving them.
type MissingDependencyError struct {
	TaskID       string
	DependencyID string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("task %s depends on missing task %s", e.TaskID, e.DependencyID)
}

// SelfDependencyError reports an edge whose two endpoints are identical.
type SelfDependencyError struct {
	TaskID string
}

func (e *SelfDependencyError) Error() string {
	return fmt.Sprintf("task %s cannot depend on itself", e.TaskID)
}

// ValidationError reports a failed field-level precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Reason)
}
