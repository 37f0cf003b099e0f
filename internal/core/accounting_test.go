package core

import (
	"path/filepath"
	"testing"
	"time"

	"focusdash/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Load(filepath.Join(t.TempDir(), "focusdash.json"))
	if err != nil {
		t.Fatalf("load fresh store: %v", err)
	}
	return s
}

// ============================================================
// Commit
// ============================================================

func TestCommitWorkTime(t *testing.T) {
	c := newFakeClock()
	s := newTestStore(t)
	e := NewEngine(c, s)

	if err := e.Commit(120, false, "Work", "morning focus", false); err != nil {
		t.Fatal(err)
	}

	day := c.DayKey()
	if got := s.DailySeconds(day); got != 120 {
		t.Fatalf("expected 120s daily time, got %v", got)
	}

	sessions := s.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.Date != day || got.Duration != 120 || got.Category != "Work" || got.Note != "morning focus" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.Pomodoro {
		t.Fatal("pomodoro flag should be false")
	}
	if _, err := time.Parse(time.RFC3339, got.StartTime); err != nil {
		t.Fatalf("start_time not RFC3339: %q", got.StartTime)
	}
}

func TestCommitBreakExcludedFromDailyTime(t *testing.T) {
	c := newFakeClock()
	s := newTestStore(t)
	e := NewEngine(c, s)

	if err := e.Commit(300, true, "Work", "", true); err != nil {
		t.Fatal(err)
	}

	if got := s.DailySeconds(c.DayKey()); got != 0 {
		t.Fatalf("break time must not count toward daily totals, got %v", got)
	}
	sessions := s.Sessions()
	if len(sessions) != 1 {
		t.Fatal("break must still produce a session record")
	}
	if sessions[0].Duration != 300 || !sessions[0].Pomodoro {
		t.Fatalf("unexpected break session: %+v", sessions[0])
	}
}

func TestCommitZeroElapsedIsNoOp(t *testing.T) {
	c := newFakeClock()
	s := newTestStore(t)
	e := NewEngine(c, s)

	if err := e.Commit(0, false, "Work", "", false); err != nil {
		t.Fatal(err)
	}
	if err := e.Commit(-5, false, "Work", "", false); err != nil {
		t.Fatal(err)
	}

	if len(s.Sessions()) != 0 {
		t.Fatal("zero elapsed must record nothing")
	}
	if s.DailySeconds(c.DayKey()) != 0 {
		t.Fatal("zero elapsed must not touch daily time")
	}
}

func TestCommitPersists(t *testing.T) {
	c := newFakeClock()
	path := filepath.Join(t.TempDir(), "focusdash.json")
	s, _ := store.Load(path)
	e := NewEngine(c, s)

	if err := e.Commit(60, false, "Study", "", false); err != nil {
		t.Fatal(err)
	}

	reloaded, err := store.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.DailySeconds(c.DayKey()) != 60 {
		t.Fatal("commit must persist the daily total")
	}
	if len(reloaded.Sessions()) != 1 {
		t.Fatal("commit must persist the session record")
	}
}

// ============================================================
// Start → wait → Stop end to end
// ============================================================

func TestStartWaitStopAccounting(t *testing.T) {
	c := newFakeClock()
	s := newTestStore(t)
	tm := NewTimer(c)
	e := NewEngine(c, s)

	tm.Start()
	c.Advance(42 * time.Second)
	elapsed, onBreak := tm.Stop()
	if err := e.Commit(elapsed, onBreak, "Work", "", false); err != nil {
		t.Fatal(err)
	}

	if got := s.DailySeconds(c.DayKey()); got != 42 {
		t.Fatalf("daily time should increase by exactly the waited time, got %v", got)
	}
	sessions := s.Sessions()
	if len(sessions) != 1 || sessions[0].Duration != 42 {
		t.Fatalf("expected one 42s session, got %+v", sessions)
	}

	// A second stop with no start must change nothing.
	elapsed, onBreak = tm.Stop()
	if err := e.Commit(elapsed, onBreak, "Work", "", false); err != nil {
		t.Fatal(err)
	}
	if len(s.Sessions()) != 1 {
		t.Fatal("idle stop must not append a session")
	}
	if got := s.DailySeconds(c.DayKey()); got != 42 {
		t.Fatalf("idle stop must not change daily time, got %v", got)
	}
}
