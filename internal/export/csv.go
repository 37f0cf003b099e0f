package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"focusdash/internal/store"
)

func ToCSV(sessions []store.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Start", "Duration (s)", "Duration", "Category", "Note", "Pomodoro"}); err != nil {
		return err
	}

	for _, s := range sessions {
		row := []string{
			s.Date,
			s.StartTime,
			strconv.FormatFloat(s.Duration, 'f', -1, 64),
			formatDuration(s.Duration),
			s.Category,
			s.Note,
			strconv.FormatBool(s.Pomodoro),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs float64) string {
	total := int64(secs)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
