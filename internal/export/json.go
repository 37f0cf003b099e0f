package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"focusdash/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Sessions   []jsonEntry `json:"sessions"`
}

type jsonEntry struct {
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	DurationSec float64 `json:"duration_seconds"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Note        string  `json:"note,omitempty"`
	Pomodoro    bool    `json:"pomodoro"`
}

func ToJSON(sessions []store.Session, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		out.Sessions = append(out.Sessions, jsonEntry{
			Date:        s.Date,
			StartTime:   s.StartTime,
			DurationSec: s.Duration,
			Duration:    formatDuration(s.Duration),
			Category:    s.Category,
			Note:        s.Note,
			Pomodoro:    s.Pomodoro,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
