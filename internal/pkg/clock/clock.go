package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock pinned to a single instant.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (c *Fixed) Now() time.Time {
	return c.current
}

func (c *Fixed) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
