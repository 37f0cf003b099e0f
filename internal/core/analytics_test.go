package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"focusdash/internal/clock"
	"focusdash/internal/store"
)

// fakeClockAt pins the reference clock to a known instant. 2024-06-12 is a
// Wednesday, so the current Monday-start week is 2024-06-10 .. 2024-06-16.
func fakeClockAt(t time.Time) *clock.Clock {
	return clock.NewFake(time.UTC, t)
}

// ============================================================
// Remaining time
// ============================================================

func TestRemainingToday(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC))
	a := NewAnalytics(c, newTestStore(t))

	// 9:00:00 to 23:59:59 is 14h 59m 59s.
	if got := a.RemainingToday(); got != 53999 {
		t.Fatalf("expected 53999, got %d", got)
	}
}

func TestRemainingTodayEndOfDay(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 23, 59, 50, 0, time.UTC))
	a := NewAnalytics(c, newTestStore(t))
	if got := a.RemainingToday(); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestRemainingTodayFloorsAtZero(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 23, 59, 59, 500_000_000, time.UTC))
	a := NewAnalytics(c, newTestStore(t))
	if got := a.RemainingToday(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRemainingMonth(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC))
	a := NewAnalytics(c, newTestStore(t))

	// 18 full days plus the rest of today.
	want := 18*86400 + 53999
	if got := a.RemainingMonth(); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestRemainingMonthDecemberRollsToJanuary(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 12, 31, 23, 59, 50, 0, time.UTC))
	a := NewAnalytics(c, newTestStore(t))
	if got := a.RemainingMonth(); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

// ============================================================
// Weekly total
// ============================================================

func TestWeeklyTotalSumsCurrentMondayWeek(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-10", 100) // Monday
	s.AddSeconds("2024-06-12", 200) // today
	s.AddSeconds("2024-06-16", 300) // Sunday
	s.AddSeconds("2024-06-09", 999) // previous week, ignored
	s.AddSeconds("2024-06-17", 999) // next week, ignored

	if got := a.WeeklyTotal(); got != 600 {
		t.Fatalf("expected 600, got %v", got)
	}
}

func TestWeeklyTotalOnSunday(t *testing.T) {
	// Sunday belongs to the week of the previous Monday.
	c := fakeClockAt(time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-10", 100) // Monday of the same week
	s.AddSeconds("2024-06-17", 999) // next Monday, ignored

	if got := a.WeeklyTotal(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

// ============================================================
// Streak
// ============================================================

func TestStreakCountsBackFromToday(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-12", 5) // today
	s.AddSeconds("2024-06-11", 3) // yesterday
	// 2024-06-10 has no entry: the streak stops there.
	s.AddSeconds("2024-06-09", 7)

	if got := a.Streak(); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestStreakZeroWhenTodayEmpty(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-11", 3600)
	s.AddSeconds("2024-06-10", 3600)

	if got := a.Streak(); got != 0 {
		t.Fatalf("a zero today makes the streak 0, got %d", got)
	}
}

func TestStreakTreatsExplicitZeroAsGap(t *testing.T) {
	// A day present in the map with value exactly 0 counts as a gap, same
	// as an absent day.
	path := filepath.Join(t.TempDir(), "focusdash.json")
	doc := `{"daily_time": {"2024-06-12": 5, "2024-06-11": 0, "2024-06-10": 8}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := store.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	a := NewAnalytics(c, s)
	if got := a.Streak(); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
}

// ============================================================
// Category breakdown
// ============================================================

func TestCategoryBreakdownIncludesBreaks(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AppendSession(store.Session{Category: "Work", Duration: 100})
	s.AppendSession(store.Session{Category: "Work", Duration: 50})
	s.AppendSession(store.Session{Category: "Study", Duration: 30})
	// Break sessions count here even though daily totals exclude them.
	s.AppendSession(store.Session{Category: "Work", Duration: 300, Pomodoro: true})

	b := a.CategoryBreakdown()
	if b["Work"] != 450 {
		t.Fatalf("expected Work 450, got %v", b["Work"])
	}
	if b["Study"] != 30 {
		t.Fatalf("expected Study 30, got %v", b["Study"])
	}
}

// ============================================================
// Series and progress
// ============================================================

func TestDailySeries(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-12", 60)
	s.AddSeconds("2024-06-10", 30)

	series := a.DailySeries(7)
	if len(series) != 7 {
		t.Fatalf("expected 7 days, got %d", len(series))
	}
	if series[0].Day != "2024-06-06" {
		t.Fatalf("series should start 6 days back, got %q", series[0].Day)
	}
	if series[6].Day != "2024-06-12" || series[6].Seconds != 60 {
		t.Fatalf("series should end today, got %+v", series[6])
	}
	if series[4].Day != "2024-06-10" || series[4].Seconds != 30 {
		t.Fatalf("unexpected middle entry: %+v", series[4])
	}
	if series[5].Seconds != 0 {
		t.Fatal("empty days must report zero")
	}
}

func TestGoalProgressClamped(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	if err := s.SetGoals(3600, 7200); err != nil {
		t.Fatal(err)
	}
	s.AddSeconds("2024-06-12", 7200) // double the daily goal

	daily, weekly := a.GoalProgress()
	if daily != 1 {
		t.Fatalf("daily progress must clamp to 1, got %v", daily)
	}
	if weekly != 1 {
		t.Fatalf("weekly progress must clamp to 1, got %v", weekly)
	}
}

func TestTodayTotal(t *testing.T) {
	c := fakeClockAt(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC))
	s := newTestStore(t)
	a := NewAnalytics(c, s)

	s.AddSeconds("2024-06-12", 123)
	if got := a.TodayTotal(); got != 123 {
		t.Fatalf("expected 123, got %v", got)
	}
}
