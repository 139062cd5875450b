// Package progress computes completion metrics over a set of tracked
// items and renders them for terminals, JSON consumers, and markdown
// reports. It is independent of the planning package; callers map their
// own statuses onto the progress statuses.
package progress

import (
	"fmt"
	"time"
)

// Status is the progress state of a tracked item.
type Status string

// Status constants.
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusDeferred   Status = "deferred"
)

// All returns every status in declaration order.
func All() []Status {
	return []Status{
		StatusNotStarted,
		StatusInProgress,
		StatusCompleted,
		StatusBlocked,
		StatusDeferred,
	}
}

// IsCompleted reports whether the item is done.
func (s Status) IsCompleted() bool { return s == StatusCompleted }

// IsActive reports whether the item is being worked on.
func (s Status) IsActive() bool { return s == StatusInProgress }

// IsNotStarted reports whether work has not begun.
func (s Status) IsNotStarted() bool { return s == StatusNotStarted }

// IsBlocked reports whether the item is blocked.
func (s Status) IsBlocked() bool { return s == StatusBlocked }

// IsDeferred reports whether the item has been deferred.
func (s Status) IsDeferred() bool { return s == StatusDeferred }

// String returns the human-readable form ("not started", "in progress").
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusCompleted:
		return "completed"
	case StatusBlocked:
		return "blocked"
	case StatusDeferred:
		return "deferred"
	default:
		return string(s)
	}
}

// Metrics summarizes the progress of a collection of items.
type Metrics struct {
	Total                int          `json:"total"`
	Completed            int          `json:"completed"`
	InProgress           int          `json:"in_progress"`
	Blocked              int          `json:"blocked"`
	Deferred             int          `json:"deferred"`
	NotStarted           int          `json:"not_started"`
	CompletionPercentage float64      `json:"completion_percentage"`
	Distribution         Distribution `json:"status_distribution"`
}

// Distribution holds the per-status percentages. All fields are zero
// when the total is zero.
type Distribution struct {
	CompletedPct  float64 `json:"completed_pct"`
	InProgressPct float64 `json:"in_progress_pct"`
	BlockedPct    float64 `json:"blocked_pct"`
	DeferredPct   float64 `json:"deferred_pct"`
	NotStartedPct float64 `json:"not_started_pct"`
}

// NewMetrics builds metrics from explicit counts. The per-status counts
// must sum to total.
func NewMetrics(total, completed, inProgress, blocked, deferred, notStarted int) (Metrics, error) {
	sum := completed + inProgress + blocked + deferred + notStarted
	if total != sum {
		return Metrics{}, &CountMismatchError{Total: total, Sum: sum}
	}

	pct := func(count int) float64 {
		if total == 0 {
			return 0.0
		}

		return float64(count) / float64(total) * 100.0
	}

	return Metrics{
		Total:                total,
		Completed:            completed,
		InProgress:           inProgress,
		Blocked:              blocked,
		Deferred:             deferred,
		NotStarted:           notStarted,
		CompletionPercentage: pct(completed),
		Distribution: Distribution{
			CompletedPct:  pct(completed),
			InProgressPct: pct(inProgress),
			BlockedPct:    pct(blocked),
			DeferredPct:   pct(deferred),
			NotStartedPct: pct(notStarted),
		},
	}, nil
}

// FromStatuses computes metrics by counting statuses. Unknown statuses
// count toward the total as not started.
func FromStatuses(statuses []Status) Metrics {
	var completed, inProgress, blocked, deferred, notStarted int

	for _, s := range statuses {
		switch s {
		case StatusCompleted:
			completed++
		case StatusInProgress:
			inProgress++
		case StatusBlocked:
			blocked++
		case StatusDeferred:
			deferred++
		default:
			notStarted++
		}
	}

	m, err := NewMetrics(len(statuses), completed, inProgress, blocked, deferred, notStarted)
	if err != nil {
		// Unreachable: the counts are derived from the same slice.
		return Empty()
	}

	return m
}

// Empty returns zeroed metrics.
func Empty() Metrics {
	return Metrics{}
}

// IsComplete reports whether every item is completed.
func (m Metrics) IsComplete() bool {
	return m.CompletionPercentage >= 100.0
}

// IsStalled reports whether work remains but nothing is in progress.
func (m Metrics) IsStalled() bool {
	return m.InProgress == 0 && m.Completed < m.Total && m.Total > 0
}

// Remaining returns the number of items not yet completed.
func (m Metrics) Remaining() int {
	if m.Completed > m.Total {
		return 0
	}

	return m.Total - m.Completed
}

// String renders a one-line summary of the metrics.
func (m Metrics) String() string {
	return fmt.Sprintf(
		"Progress: %d/%d, %.1f%%, completed: %d, in progress: %d, blocked: %d, deferred: %d, not started: %d",
		m.Completed, m.Total, m.CompletionPercentage,
		m.Completed, m.InProgress, m.Blocked, m.Deferred, m.NotStarted,
	)
}

// Dashboard is a point-in-time progress report, optionally broken down
// by category.
type Dashboard struct {
	Title      string             `json:"title"`
	Metrics    Metrics            `json:"metrics"`
	Categories []CategoryProgress `json:"category_breakdown"`

	// GeneratedAt is a unix timestamp in seconds.
	GeneratedAt int64 `json:"generated_at"`
}

// CategoryProgress is the per-category slice of a dashboard.
type CategoryProgress struct {
	Category string  `json:"category"`
	Total    int     `json:"total"`
	Metrics  Metrics `json:"metrics"`
}

// NewDashboard builds a dashboard stamped with the given time.
func NewDashboard(title string, metrics Metrics, categories []CategoryProgress, now time.Time) Dashboard {
	return Dashboard{
		Title:       title,
		Metrics:     metrics,
		Categories:  categories,
		GeneratedAt: now.Unix(),
	}
}
