package core

import (
	"time"

	"focusdash/internal/clock"
	"focusdash/internal/store"
)

// Analytics answers read-side queries over the persisted history. It never
// mutates the store.
type Analytics struct {
	clock *clock.Clock
	store *store.Store
}

func NewAnalytics(c *clock.Clock, s *store.Store) *Analytics {
	return &Analytics{clock: c, store: s}
}

// DayTotal is one bar of the daily time series.
type DayTotal struct {
	Day     string // YYYY-MM-DD
	Date    time.Time
	Seconds float64
}

// RemainingToday returns whole seconds from now to 23:59:59 of the current
// reference-zone day, floored at 0.
func (a *Analytics) RemainingToday() int {
	now := a.clock.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, a.clock.Location())
	secs := int(end.Sub(now).Seconds())
	if secs < 0 {
		secs = 0
	}
	return secs
}

// RemainingMonth returns whole seconds from now to the last instant of the
// current reference-zone month. December rolls into January of the next year.
func (a *Analytics) RemainingMonth() int {
	now := a.clock.Now()
	loc := a.clock.Location()

	var next time.Time
	if now.Month() == time.December {
		next = time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
	} else {
		next = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, loc)
	}
	end := next.Add(-time.Second)

	secs := int(end.Sub(now).Seconds())
	if secs < 0 {
		secs = 0
	}
	return secs
}

// weekStart returns midnight of the current week's Monday in the reference
// zone.
func (a *Analytics) weekStart() time.Time {
	today := a.clock.Today()
	weekday := today.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	return today.AddDate(0, 0, -int(weekday-time.Monday))
}

// WeeklyTotal sums the daily totals of the 7 calendar days of the current
// Monday-start week. Entries outside that range are ignored.
func (a *Analytics) WeeklyTotal() float64 {
	start := a.weekStart()
	var total float64
	for i := 0; i < 7; i++ {
		total += a.store.DailySeconds(a.clock.DayKeyAt(start.AddDate(0, 0, i)))
	}
	return total
}

// TodayTotal is the committed productive seconds for the current day.
func (a *Analytics) TodayTotal() float64 {
	return a.store.DailySeconds(a.clock.DayKey())
}

// Streak counts consecutive days ending today with positive recorded time.
// A day recorded with exactly 0 counts as a gap, same as an absent day, and
// a zero today makes the streak 0 regardless of prior history.
func (a *Analytics) Streak() int {
	day := a.clock.Today()
	streak := 0
	for a.store.DailySeconds(a.clock.DayKeyAt(day)) > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CategoryBreakdown sums session durations per category over the whole log.
// Break sessions are included here: the breakdown is informational, not goal
// tracking.
func (a *Analytics) CategoryBreakdown() map[string]float64 {
	out := make(map[string]float64)
	for _, s := range a.store.Sessions() {
		out[s.Category] += s.Duration
	}
	return out
}

// DailySeries returns the last n days ending today, oldest first, including
// days with zero time. It feeds the dashboard chart.
func (a *Analytics) DailySeries(n int) []DayTotal {
	today := a.clock.Today()
	out := make([]DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := a.clock.DayKeyAt(d)
		out = append(out, DayTotal{Day: key, Date: d, Seconds: a.store.DailySeconds(key)})
	}
	return out
}

// GoalProgress returns today's and this week's progress toward the goals as
// fractions clamped to [0, 1] for display.
func (a *Analytics) GoalProgress() (daily, weekly float64) {
	goals := a.store.Goals()
	daily = clamp01(a.TodayTotal() / goals.Daily)
	weekly = clamp01(a.WeeklyTotal() / goals.Weekly)
	return daily, weekly
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
