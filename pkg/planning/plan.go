// Package planning models a plan as a validated dependency graph of
// tasks. A Plan can only be obtained through New (or the JSON path,
// which funnels into New), so every Plan in existence has unique task
// IDs, resolvable edges, and an acyclic graph.
//
// All queries are read-only and safe for concurrent readers. The single
// mutation, Transition, requires exclusive access; the package does no
// internal locking.
package planning

import (
	"encoding/json"
	"strings"
	"time"
)

// Plan is the aggregate root owning a set of tasks and the dependency
// edges between them. Task insertion order is preserved and used as the
// deterministic tie-break for ordering queries.
type Plan struct {
	title       string
	description string
	tasks       []Task
	deps        []Dependency

	// byID maps a task id to its index in tasks.
	byID map[string]int
}

// New constructs a validated plan. Checks run in order: plan title,
// per-task fields, duplicate IDs, edge endpoints and self-loops, and
// finally acyclicity. The first failure short-circuits; no partial plan
// is ever observable.
func New(title, description string, tasks []Task, deps []Dependency) (*Plan, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}

	owned := make([]Task, len(tasks))
	for i, t := range tasks {
		owned[i] = t.clone()

		if err := owned[i].validate(); err != nil {
			return nil, err
		}
	}

	byID := make(map[string]int, len(owned))

	for i, t := range owned {
		if _, dup := byID[t.ID]; dup {
			return nil, &DuplicateIDError{ID: t.ID}
		}

		byID[t.ID] = i
	}

	for _, dep := range deps {
		if dep.TaskID == dep.DependsOn {
			return nil, &SelfDependencyError{TaskID: dep.TaskID}
		}

		if _, ok := byID[dep.TaskID]; !ok {
			return nil, &MissingDependencyError{TaskID: dep.TaskID, DependencyID: dep.DependsOn}
		}

		if _, ok := byID[dep.DependsOn]; !ok {
			return nil, &MissingDependencyError{TaskID: dep.TaskID, DependencyID: dep.DependsOn}
		}
	}

	ids := make([]string, len(owned))
	for i, t := range owned {
		ids[i] = t.ID
	}

	if cycle := detectCycle(ids, deps); cycle != nil {
		return nil, &CyclicDependencyError{Cycle: cycle}
	}

	ownedDeps := make([]Dependency, len(deps))
	copy(ownedDeps, deps)

	return &Plan{
		title:       trimmed,
		description: description,
		tasks:       owned,
		deps:        ownedDeps,
		byID:        byID,
	}, nil
}

// Title returns the plan title.
func (p *Plan) Title() string { return p.title }

// Description returns the plan description.
func (p *Plan) Description() string { return p.description }

// Len returns the number of tasks in the plan.
func (p *Plan) Len() int { return len(p.tasks) }

// Tasks returns the tasks in insertion order. The returned slice is a
// copy; mutating it does not affect the plan.
func (p *Plan) Tasks() []Task {
	out := make([]Task, len(p.tasks))
	for i, t := range p.tasks {
		out[i] = t.clone()
	}

	return out
}

// Dependencies returns a copy of the dependency edges.
func (p *Plan) Dependencies() []Dependency {
	out := make([]Dependency, len(p.deps))
	copy(out, p.deps)

	return out
}

// Task returns the task with the given id, if present.
func (p *Plan) Task(id string) (Task, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Task{}, false
	}

	return p.tasks[i].clone(), true
}

// Transition moves one task to a new status. This is the only mutation
// a plan supports; every error path leaves the plan unchanged.
func (p *Plan) Transition(id string, to Status) error {
	i, ok := p.byID[id]
	if !ok {
		return &ValidationError{Field: "task_id", Reason: "no task with id: " + id}
	}

	return p.tasks[i].Transition(to)
}

// TopologicalOrder returns every task exactly once such that each
// prerequisite appears before all of its dependents (Kahn's algorithm).
// The ready queue is consumed in task insertion order, so the output is
// deterministic with insertion order as the tie-break.
//
// Construction guarantees acyclicity, but a short result is still
// treated as a cycle and reported rather than silently truncated.
func (p *Plan) TopologicalOrder() ([]Task, error) {
	if len(p.tasks) == 0 {
		return []Task{}, nil
	}

	// Adjacency runs prerequisite -> dependent; in-degree of a task is
	// the number of unresolved prerequisites it has.
	dependents := make(map[string][]string, len(p.tasks))
	inDegree := make(map[string]int, len(p.tasks))

	for _, t := range p.tasks {
		inDegree[t.ID] = 0
	}

	for _, dep := range p.deps {
		dependents[dep.DependsOn] = append(dependents[dep.DependsOn], dep.TaskID)
		inDegree[dep.TaskID]++
	}

	queue := make([]string, 0, len(p.tasks))

	for _, t := range p.tasks {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	order := make([]Task, 0, len(p.tasks))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, p.tasks[p.byID[id]].clone())

		for _, dependent := range dependents[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(order) != len(p.tasks) {
		ids := make([]string, len(p.tasks))
		for i, t := range p.tasks {
			ids[i] = t.ID
		}

		return nil, &CyclicDependencyError{Cycle: detectCycle(ids, p.deps)}
	}

	return order, nil
}

// ReadyTasks returns tasks that can be worked on now: status todo or
// in_progress with every prerequisite done. A task with no outgoing
// edges is vacuously ready. Done and blocked tasks are never ready,
// regardless of their dependencies.
func (p *Plan) ReadyTasks() []Task {
	ready := make([]Task, 0, len(p.tasks))

	for _, t := range p.tasks {
		if t.Status != StatusTodo && t.Status != StatusInProgress {
			continue
		}

		satisfied := true

		for _, dep := range p.deps {
			if dep.TaskID != t.ID {
				continue
			}

			if p.tasks[p.byID[dep.DependsOn]].Status != StatusDone {
				satisfied = false

				break
			}
		}

		if satisfied {
			ready = append(ready, t.clone())
		}
	}

	return ready
}

// BlockedTasks returns tasks whose status field is blocked. This is the
// explicit flag, not the derived "has an unmet dependency" notion; the
// two are independent concepts.
func (p *Plan) BlockedTasks() []Task {
	blocked := make([]Task, 0)

	for _, t := range p.tasks {
		if t.Status == StatusBlocked {
			blocked = append(blocked, t.clone())
		}
	}

	return blocked
}

// OverdueTasks returns tasks whose due date has passed as of now.
func (p *Plan) OverdueTasks(now time.Time) []Task {
	overdue := make([]Task, 0)

	for _, t := range p.tasks {
		if t.IsOverdue(now) {
			overdue = append(overdue, t.clone())
		}
	}

	return overdue
}

// CompletionPercentage returns done/total as a percentage, 0.0 for an
// empty plan.
func (p *Plan) CompletionPercentage() float64 {
	if len(p.tasks) == 0 {
		return 0.0
	}

	done := 0

	for _, t := range p.tasks {
		if t.Status == StatusDone {
			done++
		}
	}

	return float64(done) / float64(len(p.tasks)) * 100.0
}

// TotalEstimateHours sums all present estimates; tasks without an
// estimate contribute zero.
func (p *Plan) TotalEstimateHours() float64 {
	var total float64

	for _, t := range p.tasks {
		if t.EstimateHours != nil {
			total += *t.EstimateHours
		}
	}

	return total
}

// planDoc is the persisted plan shape.
type planDoc struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Tasks        []Task       `json:"tasks"`
	Dependencies []Dependency `json:"dependencies"`
}

// MarshalJSON encodes the plan as the persisted
// {title, description, tasks, dependencies} shape.
func (p *Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(planDoc{
		Title:        p.title,
		Description:  p.description,
		Tasks:        p.tasks,
		Dependencies: p.deps,
	})
}

// UnmarshalJSON decodes the persisted shape and re-runs the full New
// validation path, so untrusted bytes yield either a valid plan or a
// structured error.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var doc planDoc

	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationError{Field: "deserialization", Reason: err.Error()}
	}

	plan, err := New(doc.Title, doc.Description, doc.Tasks, doc.Dependencies)
	if err != nil {
		return err
	}

	*p = *plan

	return nil
}

// ToJSON returns the plan as indented JSON.
func (p *Plan) ToJSON() ([]byte, error) {
	doc := planDoc{
		Title:        p.title,
		Description:  p.description,
		Tasks:        p.tasks,
		Dependencies: p.deps,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// FromJSON parses and validates a plan from JSON bytes.
func FromJSON(data []byte) (*Plan, error) {
	var p Plan

	if err := p.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return &p, nil
}
