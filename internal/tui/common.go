package tui

import (
	"fmt"
	"time"

	"focusdash/internal/core"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewSessions
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Sessions", "Reports", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type timerStartedMsg struct{}

type timerStoppedMsg struct {
	committed float64
	onBreak   bool
}

type phaseMsg struct {
	event core.PhaseEvent
}

type exportDoneMsg struct {
	path string
}

type settingsSavedMsg struct{}

// --- Helpers ---

// formatSeconds renders seconds as HH:MM:SS.
func formatSeconds(secs float64) string {
	total := int64(secs)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatHMS renders seconds as the header-style "3h 21m 9s".
func formatHMS(secs int) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

func formatHours(secs float64) string {
	return fmt.Sprintf("%.1fh", secs/3600)
}
