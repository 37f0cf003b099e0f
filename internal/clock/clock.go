package clock

import (
	"fmt"
	"time"
)

// Clock supplies the current time in a fixed reference timezone. All day,
// week and month boundaries in the application are computed against this
// zone, never against the ambient host zone.
type Clock struct {
	loc     *time.Location
	now     func() time.Time
	advance func(time.Duration) // only set on fake clocks
}

// New builds a Clock for the given IANA zone name. An empty name or "Local"
// pins the clock to the host zone as it is right now.
func New(tz string) (*Clock, error) {
	if tz == "" || tz == "Local" {
		return &Clock{loc: time.Local, now: time.Now}, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFake returns a clock frozen at t in loc. Advance moves it forward.
func NewFake(loc *time.Location, t time.Time) *Clock {
	c := &Clock{loc: loc}
	cur := t
	c.now = func() time.Time { return cur }
	c.advance = func(d time.Duration) { cur = cur.Add(d) }
	return c
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// DayKey returns the current calendar date in the reference zone, formatted
// YYYY-MM-DD.
func (c *Clock) DayKey() string {
	return c.DayKeyAt(c.Now())
}

// DayKeyAt formats t's calendar date in the reference zone.
func (c *Clock) DayKeyAt(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// Today returns midnight of the current reference-zone day.
func (c *Clock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

// Location exposes the reference zone for callers that build their own dates.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Advance moves a fake clock forward. It panics on a real clock; production
// code never calls it.
func (c *Clock) Advance(d time.Duration) {
	if c.advance == nil {
		panic("clock: Advance called on a real clock")
	}
	c.advance(d)
}
