package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/clarityhq/clarity/pkg/interview"
)

// planAnswers is the interview outcome translated into plan input.
type planAnswers struct {
	title       string
	description string
	taskSpecs   []string
	depSpecs    []string
}

// planQuestions is the built-in interview for "clarity new -i".
func planQuestions() []interview.Question {
	return []interview.Question{
		{
			Text:     "Plan title",
			Required: true,
			Type:     interview.QuestionText,
		},
		{
			Text: "Plan description",
			Type: interview.QuestionText,
		},
		{
			Text:     "Tasks",
			HelpText: "One per line as ID: TITLE. Empty line to finish.",
			Type:     interview.QuestionText,
		},
		{
			Text:     "Dependencies",
			HelpText: "One per line as TASK: DEPENDS_ON. Empty line to finish.",
			Type:     interview.QuestionText,
		},
	}
}

// runPlanInterview drives the built-in plan interview over the
// command's stdin. The interview transitions created -> in_progress ->
// completed, or to cancelled when input is aborted.
func runPlanInterview(o *IO) (planAnswers, error) {
	b := interview.NewBuilder().
		ID(interview.NewID().String()).
		SpecName("plan").
		Title("New plan interview")

	for _, q := range planQuestions() {
		b.Question(q)
	}

	iv, err := b.Build()
	if err != nil {
		return planAnswers{}, err
	}

	iv, err = iv.TransitionTo(interview.StateInProgress, time.Now())
	if err != nil {
		return planAnswers{}, err
	}

	p := newPrompter(o)
	defer p.Close()

	cancel := func() (planAnswers, error) {
		_, _ = iv.TransitionTo(interview.StateCancelled, time.Now())

		return planAnswers{}, ErrInterviewCancelled
	}

	var values [4]string

	for i, q := range iv.Questions {
		if q.HelpText != "" {
			o.Println("#", q.HelpText)
		}

		var value string

		var readErr error

		if i < 2 {
			value, readErr = askSingle(p, q)
		} else {
			value, readErr = askLines(p, q)
		}

		if readErr != nil {
			return cancel()
		}

		iv, err = iv.WithAnswer(interview.Answer{QuestionIndex: i, Value: value}, time.Now())
		if err != nil {
			return planAnswers{}, err
		}

		values[i] = value
	}

	if _, err := iv.TransitionTo(interview.StateCompleted, time.Now()); err != nil {
		return planAnswers{}, err
	}

	return planAnswers{
		title:       values[0],
		description: values[1],
		taskSpecs:   splitLines(values[2]),
		depSpecs:    splitLines(values[3]),
	}, nil
}

// askSingle reads one line, re-prompting while a required answer is
// empty.
func askSingle(p prompter, q interview.Question) (string, error) {
	for {
		line, err := p.ReadLine(q.Text + ": ")
		if err != nil {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" || !q.Required {
			return line, nil
		}
	}
}

// askLines reads lines until an empty one and joins them.
func askLines(p prompter, q interview.Question) (string, error) {
	var lines []string

	for {
		line, err := p.ReadLine(fmt.Sprintf("%s [%d]: ", q.Text, len(lines)+1))
		if err != nil {
			// EOF after at least one line just ends the list.
			if errors.Is(err, io.EOF) {
				break
			}

			return "", err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// prompter abstracts line input so tests can feed answers through a
// plain reader while terminals get readline editing.
type prompter interface {
	ReadLine(prompt string) (string, error)
	Close()
}

// newPrompter picks liner when running on a real terminal, otherwise a
// buffered reader over the command's stdin.
func newPrompter(o *IO) prompter {
	if f, ok := o.In.(*os.File); ok && f == os.Stdin && liner.TerminalSupported() {
		return &linerPrompter{state: liner.NewLiner()}
	}

	return &readerPrompter{o: o, r: bufio.NewReader(o.In)}
}

type linerPrompter struct {
	state *liner.State
}

func (p *linerPrompter) ReadLine(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if err != nil {
		return "", err
	}

	return line, nil
}

func (p *linerPrompter) Close() {
	_ = p.state.Close()
}

type readerPrompter struct {
	o *IO
	r *bufio.Reader
}

func (p *readerPrompter) ReadLine(prompt string) (string, error) {
	p.o.Printf("%s", prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *readerPrompter) Close() {}
