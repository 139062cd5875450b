package planning

// Status is the lifecycle state of a task. The string values are the
// wire form used in plan files.
type Status string

// Status constants.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

// ValidTransitions returns the legal successor statuses in fixed
// declaration order. Done is terminal and returns nil.
func (s Status) ValidTransitions() []Status {
	switch s {
	case StatusTodo:
		return []Status{StatusInProgress, StatusBlocked}
	case StatusInProgress:
		return []Status{StatusDone, StatusBlocked}
	case StatusBlocked:
		return []Status{StatusTodo, StatusInProgress}
	case StatusDone:
		return nil
	default:
		return nil
	}
}

// CanTransitionTo reports whether the state machine permits moving from
// s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range s.ValidTransitions() {
		if next == target {
			return true
		}
	}

	return false
}

// Valid reports whether s is one of the four canonical statuses.
// Unmarshaling accepts arbitrary strings, so plan construction re-checks
// every status with this.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBlocked:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Priority is a task priority level, P0 highest. The ordering is used
// for display sorting only, never for scheduling.
type Priority string

// Priority constants, highest severity first.
const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// Rank returns the sort rank of p, 0 for P0 through 3 for P3.
// Unknown priorities rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityP0:
		return 0
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	default:
		return 4
	}
}

// Valid reports whether p is one of the four canonical priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityP0, PriorityP1, PriorityP2, PriorityP3:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	return string(p)
}
