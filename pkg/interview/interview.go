// Package interview models a structured interview as an immutable value
// with a strict lifecycle state machine. Mutating operations return a
// new snapshot, so earlier snapshots stay valid.
package interview

import (
	"time"

	"github.com/google/uuid"
)

// ID is a UUID-format interview identifier.
type ID string

// NewID generates a fresh random interview id.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID validates the 36-character 8-4-4-4-12 UUID form.
func ParseID(s string) (ID, error) {
	if !isValidUUID(s) {
		return "", &InvalidIDFormatError{Value: s}
	}

	return ID(s), nil
}

func (id ID) String() string { return string(id) }

func isValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}

	groups := [5]int{8, 4, 4, 4, 12}
	start := 0

	for i, width := range groups {
		if i > 0 {
			if s[start] != '-' {
				return false
			}

			start++
		}

		for _, c := range s[start : start+width] {
			if !isHexDigit(byte(c)) {
				return false
			}
		}

		start += width
	}

	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// State is the lifecycle state of an interview.
type State string

// State constants.
const (
	StateCreated    State = "created"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateCancelled  State = "cancelled"
)

func (s State) String() string { return string(s) }

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the interview can still progress.
func (s State) IsActive() bool {
	return !s.IsTerminal()
}

// validTransition reports whether from may move to to. Transitions to
// the same state are always allowed.
func validTransition(from, to State) bool {
	if from == to {
		return true
	}

	switch from {
	case StateCreated:
		return to == StateInProgress || to == StateCancelled
	case StateInProgress:
		return to == StateCompleted || to == StateFailed || to == StateCancelled
	default:
		return false
	}
}

// QuestionType describes how a question's answer is interpreted.
type QuestionType string

// QuestionType constants.
const (
	QuestionText           QuestionType = "text"
	QuestionBoolean        QuestionType = "boolean"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionNumeric        QuestionType = "numeric"
)

// Question is a single interview prompt.
type Question struct {
	Text     string
	HelpText string
	Required bool
	Type     QuestionType

	// Options holds the choices for multiple_choice questions.
	Options []string
}

// Answer records the raw user input for one question. Type-aware
// parsing is the runner's concern.
type Answer struct {
	QuestionIndex int
	Value         string
}

// Interview is one interview session. Values are treated as immutable:
// TransitionTo and WithAnswer return new snapshots.
type Interview struct {
	ID          ID
	SpecName    string
	Title       string
	Description string
	State       State
	Questions   []Question
	Answers     []Answer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransitionTo returns a copy of the interview in the new state, or an
// error when the lifecycle forbids the move. The receiver is unchanged.
func (iv Interview) TransitionTo(to State, now time.Time) (Interview, error) {
	if !validTransition(iv.State, to) {
		return Interview{}, &InvalidStateTransitionError{From: iv.State, To: to}
	}

	next := iv.snapshot()
	next.State = to
	next.UpdatedAt = now

	return next, nil
}

// WithAnswer returns a copy of the interview with the answer appended.
// The question index must address an existing question.
func (iv Interview) WithAnswer(a Answer, now time.Time) (Interview, error) {
	if a.QuestionIndex < 0 || a.QuestionIndex >= len(iv.Questions) {
		return Interview{}, &InvalidQuestionIndexError{Index: a.QuestionIndex}
	}

	next := iv.snapshot()
	next.Answers = append(next.Answers, a)
	next.UpdatedAt = now

	return next, nil
}

// IsTerminal reports whether the interview has ended.
func (iv Interview) IsTerminal() bool { return iv.State.IsTerminal() }

// IsActive reports whether the interview can still progress.
func (iv Interview) IsActive() bool { return iv.State.IsActive() }

// snapshot copies the interview with freshly allocated slices so the
// copy shares no mutable state with the receiver.
func (iv Interview) snapshot() Interview {
	next := iv

	next.Questions = make([]Question, len(iv.Questions))
	copy(next.Questions, iv.Questions)

	next.Answers = make([]Answer, 0, len(iv.Answers)+1)
	next.Answers = append(next.Answers, iv.Answers...)

	return next
}
