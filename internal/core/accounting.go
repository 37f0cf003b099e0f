package core

import (
	"fmt"
	"time"

	"focusdash/internal/clock"
	"focusdash/internal/store"
)

// Engine commits drained timer time into the persisted store.
type Engine struct {
	clock *clock.Clock
	store *store.Store
}

func NewEngine(c *clock.Clock, s *store.Store) *Engine {
	return &Engine{clock: c, store: s}
}

// Commit appends a session record and, for work time only, adds the elapsed
// seconds to today's total, then persists the store. Both in-memory updates
// apply together before the save, so readers never observe one without the
// other. Non-positive elapsed time records nothing, which guards against a
// Stop without a Start.
//
// Break time is deliberately asymmetric: it always produces a session record
// for the audit log but never counts toward daily totals or goals.
func (e *Engine) Commit(elapsed float64, onBreak bool, category, note string, pomodoro bool) error {
	if elapsed <= 0 {
		return nil
	}

	day := e.clock.DayKey()
	e.store.AppendSession(store.Session{
		Date:      day,
		StartTime: e.clock.Now().Format(time.RFC3339),
		Duration:  elapsed,
		Category:  category,
		Note:      note,
		Pomodoro:  pomodoro,
	})
	if !onBreak {
		e.store.AddSeconds(day, elapsed)
	}

	// A failed save keeps the in-memory state; the next successful save
	// flushes this commit along with it.
	if err := e.store.Save(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}
