package booking

import (
	"errors"
	"time"
)

// Window is the reserved time span of a booking. Start is always strictly
// before End; equal timestamps are rejected.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errors.New("window bounds must be set")
	}
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Contains reports whether the rental is in progress at the given instant,
// i.e. start <= now < end.
func (w Window) Contains(now time.Time) bool {
	return !w.start.After(now) && now.Before(w.end)
}

// IsPast reports whether the rental period has fully elapsed.
func (w Window) IsPast(now time.Time) bool {
	return w.end.Before(now)
}

// IsFuture reports whether the rental has not started yet.
func (w Window) IsFuture(now time.Time) bool {
	return w.start.After(now)
}
