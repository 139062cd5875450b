// Package testutil holds shared test helpers.
package testutil

import "time"

// Clock provides deterministic, monotonically increasing timestamps
// for tests.
type Clock struct {
	current time.Time
	step    time.Duration
}

// NewClock returns a clock initialized to a fixed UTC start time.
func NewClock() *Clock {
	return &Clock{
		current: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		step:    time.Second,
	}
}

// Now returns the next instant.
func (c *Clock) Now() time.Time {
	c.current = c.current.Add(c.step)

	return c.current
}

// NextTimestamp returns the next instant in RFC3339 format.
func (c *Clock) NextTimestamp() string {
	return c.Now().Format(time.RFC3339)
}
