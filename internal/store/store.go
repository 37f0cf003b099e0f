package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds the durable data as a single JSON document. It is loaded once
// at startup and saved after each mutating action; one process owns the file
// at a time, so no locking is involved.
type Store struct {
	path string
	data Data
}

// Defaults is the documented initial document: 8h/40h goals, four starter
// categories, dark theme, 25/5 pomodoro.
func Defaults() Data {
	return Data{
		DailyTime:  map[string]float64{},
		Goals:      Goals{Daily: 8 * 3600, Weekly: 40 * 3600},
		Categories: []string{"Work", "Study", "Personal", "Exercise"},
		Settings: Settings{
			Theme:    "dark",
			Pomodoro: PomodoroConfig{Work: 25, Break: 5},
		},
	}
}

// Load reads the document at path. A missing file yields the defaults. A file
// that cannot be read or decoded also yields the defaults, together with an
// error wrapping ErrCorruptData so the caller can warn the user; the file on
// disk stays untouched until the next successful Save.
func Load(path string) (*Store, error) {
	s := &Store{path: path, data: Defaults()}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read data file: %v: %w", err, ErrCorruptData)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return s, fmt.Errorf("decode data file: %v: %w", err, ErrCorruptData)
	}
	s.data = normalize(d)
	return s, nil
}

// normalize fills fields an older or hand-edited file may lack, so the
// invariants (at least one category, positive goals, usable settings) hold
// for every loaded document.
func normalize(d Data) Data {
	def := Defaults()
	if d.DailyTime == nil {
		d.DailyTime = map[string]float64{}
	}
	if d.Goals.Daily <= 0 {
		d.Goals.Daily = def.Goals.Daily
	}
	if d.Goals.Weekly <= 0 {
		d.Goals.Weekly = def.Goals.Weekly
	}
	if len(d.Categories) == 0 {
		d.Categories = def.Categories
	}
	if d.Settings.Theme == "" {
		d.Settings.Theme = def.Settings.Theme
	}
	if d.Settings.Pomodoro.Work <= 0 {
		d.Settings.Pomodoro.Work = def.Settings.Pomodoro.Work
	}
	if d.Settings.Pomodoro.Break <= 0 {
		d.Settings.Pomodoro.Break = def.Settings.Pomodoro.Break
	}
	return d
}

// Save writes the whole document. The write goes to a temp file first and is
// renamed into place, so a failed write never leaves a half-written file. A
// failed Save keeps the in-memory state so the user can retry.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// DefaultDataPath returns ~/.config/focusdash/focusdash.json (per-OS config dir).
func DefaultDataPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "focusdash", "focusdash.json"), nil
}
