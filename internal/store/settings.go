package store

import "fmt"

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	return s.data.Settings
}

func (s *Store) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.data.Settings.Theme = theme
	return nil
}

// SetTimezone records the IANA reference-zone name. Validity is checked by
// the caller when it builds the clock; the empty string means the host zone.
func (s *Store) SetTimezone(tz string) {
	s.data.Settings.Timezone = tz
}

// SetPomodoro replaces the work/break durations, in minutes.
func (s *Store) SetPomodoro(workMin, breakMin int) error {
	if workMin <= 0 || breakMin <= 0 {
		return fmt.Errorf("pomodoro durations must be positive, got %d/%d", workMin, breakMin)
	}
	s.data.Settings.Pomodoro = PomodoroConfig{Work: workMin, Break: breakMin}
	return nil
}
