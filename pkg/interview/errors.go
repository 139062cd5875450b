package interview

import "fmt"

// InvalidIDFormatError reports an interview id that is not a UUID.
type InvalidIDFormatError struct {
	Value string
}

func (e *InvalidIDFormatError) Error() string {
	return fmt.Sprintf("invalid interview id format: %q", e.Value)
}

// InvalidStateTransitionError reports a state change the interview
// lifecycle does not permit.
type InvalidStateTransitionError struct {
	From State
	To   State
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// MissingFieldError reports a required builder field that was never set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// EmptySpecNameError reports a blank spec name.
type EmptySpecNameError struct{}

func (e *EmptySpecNameError) Error() string {
	return "spec name cannot be empty"
}

// InvalidQuestionIndexError reports an answer addressed to a question
// index outside the interview's question list.
type InvalidQuestionIndexError struct {
	Index int
}

func (e *InvalidQuestionIndexError) Error() string {
	return fmt.Sprintf("invalid question index: %d", e.Index)
}
