package clock

import "time"

// Clock abstracts "now" so time-dependent rules stay testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

// MockClock reports a controllable instant.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time { return c.now }

// Set pins the clock to t.
func (c *MockClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
