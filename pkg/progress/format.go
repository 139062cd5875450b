package progress

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects an output rendering for metrics.
type Format string

// Format constants.
const (
	FormatTerminal Format = "terminal"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTerminal, FormatJSON, FormatMarkdown:
		return Format(s), nil
	default:
		return "", &UnknownFormatError{Value: s}
	}
}

const barLength = 40

// renderTerminal renders metrics as a progress bar plus a counts line.
func renderTerminal(m Metrics) string {
	filled := 0
	if m.Total > 0 {
		filled = int(float64(m.Completed) / float64(m.Total) * barLength)
	}

	if filled > barLength {
		filled = barLength
	}

	bar := fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("=", filled),
		strings.Repeat(" ", barLength-filled),
		m.CompletionPercentage,
	)

	return fmt.Sprintf(
		"%s\n\nCompleted: %d | In Progress: %d | Blocked: %d | Deferred: %d | Not Started: %d",
		bar, m.Completed, m.InProgress, m.Blocked, m.Deferred, m.NotStarted,
	)
}

// renderJSON renders metrics as compact JSON.
func renderJSON(m Metrics) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}

	return string(data), nil
}

// renderMarkdown renders metrics as markdown tables.
func renderMarkdown(m Metrics) string {
	var b strings.Builder

	b.WriteString("# Progress Dashboard\n\n")
	b.WriteString("## Overview\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total | %d |\n", m.Total)
	fmt.Fprintf(&b, "| Completed | %d |\n", m.Completed)
	fmt.Fprintf(&b, "| In Progress | %d |\n", m.InProgress)
	fmt.Fprintf(&b, "| Blocked | %d |\n", m.Blocked)
	fmt.Fprintf(&b, "| Deferred | %d |\n", m.Deferred)
	fmt.Fprintf(&b, "| Not Started | %d |\n", m.NotStarted)
	fmt.Fprintf(&b, "| Completion | %.1f%% |\n\n", m.Distribution.CompletedPct)

	b.WriteString("## Status Distribution\n\n")
	b.WriteString("| Status | Count | Percentage |\n")
	b.WriteString("|--------|-------|------------|\n")
	fmt.Fprintf(&b, "| Completed | %d | %.1f%% |\n", m.Completed, m.Distribution.CompletedPct)
	fmt.Fprintf(&b, "| In Progress | %d | %.1f%% |\n", m.InProgress, m.Distribution.InProgressPct)
	fmt.Fprintf(&b, "| Blocked | %d | %.1f%% |\n", m.Blocked, m.Distribution.BlockedPct)
	fmt.Fprintf(&b, "| Deferred | %d | %.1f%% |\n", m.Deferred, m.Distribution.DeferredPct)
	fmt.Fprintf(&b, "| Not Started | %d | %.1f%% |\n", m.NotStarted, m.Distribution.NotStartedPct)

	return b.String()
}

// Render dispatches to the renderer for the given format.
func Render(m Metrics, format Format) (string, error) {
	switch format {
	case FormatTerminal:
		return renderTerminal(m), nil
	case FormatJSON:
		return renderJSON(m)
	case FormatMarkdown:
		return renderMarkdown(m), nil
	default:
		return "", &UnknownFormatError{Value: string(format)}
	}
}
