package store

import "fmt"

// Goals returns the current daily/weekly targets.
func (s *Store) Goals() Goals {
	return s.data.Goals
}

// SetGoals replaces both targets. Both must be positive; on rejection nothing
// changes.
func (s *Store) SetGoals(daily, weekly float64) error {
	if daily <= 0 {
		return fmt.Errorf("daily goal %v: %w", daily, ErrInvalidGoal)
	}
	if weekly <= 0 {
		return fmt.Errorf("weekly goal %v: %w", weekly, ErrInvalidGoal)
	}
	s.data.Goals = Goals{Daily: daily, Weekly: weekly}
	return nil
}
