package interview

import (
	"strings"
	"time"
)

// Builder constructs interviews fluently. The zero value is usable;
// Build fails unless an id and spec name were provided.
type Builder struct {
	id          string
	specName    string
	title       string
	description string
	questions   []Question
	now         func() time.Time
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ID sets the interview id. It is validated at Build time.
func (b *Builder) ID(id string) *Builder {
	b.id = id

	return b
}

// SpecName sets the spec this interview is for.
func (b *Builder) SpecName(name string) *Builder {
	b.specName = name

	return b
}

// Title sets an optional title.
func (b *Builder) Title(title string) *Builder {
	b.title = title

	return b
}

// Description sets an optional description.
func (b *Builder) Description(description string) *Builder {
	b.description = description

	return b
}

// Question appends a question.
func (b *Builder) Question(q Question) *Builder {
	b.questions = append(b.questions, q)

	return b
}

// Now injects the clock used for CreatedAt. Defaults to time.Now.
func (b *Builder) Now(now func() time.Time) *Builder {
	b.now = now

	return b
}

// Build validates the collected fields and returns the interview in the
// created state.
func (b *Builder) Build() (Interview, error) {
	if b.id == "" {
		return Interview{}, &MissingFieldError{Field: "id"}
	}

	if b.specName == "" {
		return Interview{}, &MissingFieldError{Field: "spec_name"}
	}

	if strings.TrimSpace(b.specName) == "" {
		return Interview{}, &EmptySpecNameError{}
	}

	id, err := ParseID(b.id)
	if err != nil {
		return Interview{}, err
	}

	now := b.now
	if now == nil {
		now = time.Now
	}

	createdAt := now()

	questions := make([]Question, len(b.questions))
	copy(questions, b.questions)

	return Interview{
		ID:          id,
		SpecName:    b.specName,
		Title:       b.title,
		Description: b.description,
		State:       StateCreated,
		Questions:   questions,
		Answers:     []Answer{},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}
