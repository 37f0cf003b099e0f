package store

// Data is the whole persisted document.
type Data struct {
	DailyTime  map[string]float64 `json:"daily_time"`
	Sessions   []Session          `json:"sessions"`
	Goals      Goals              `json:"goals"`
	Categories []string           `json:"categories"`
	Settings   Settings           `json:"settings"`
}

// Session is one committed timer run. Records are append-only; break time is
// logged here even though it never reaches the daily totals.
type Session struct {
	Date      string  `json:"date"`       // YYYY-MM-DD in the reference zone
	StartTime string  `json:"start_time"` // RFC 3339 instant of the commit
	Duration  float64 `json:"duration"`   // seconds
	Category  string  `json:"category"`
	Note      string  `json:"note"`
	Pomodoro  bool    `json:"pomodoro"`
}

// Goals holds the daily and weekly productive-time targets in seconds.
type Goals struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

type Settings struct {
	Theme    string         `json:"theme"` // dark, light
	Timezone string         `json:"timezone,omitempty"`
	Pomodoro PomodoroConfig `json:"pomodoro"`
}

// PomodoroConfig durations are minutes, matching how users enter them.
type PomodoroConfig struct {
	Work  int `json:"work"`
	Break int `json:"break"`
}
