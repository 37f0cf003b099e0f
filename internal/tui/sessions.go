package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"focusdash/internal/store"
)

// sessionsModel is the read-only session log, newest first.
type sessionsModel struct {
	store  *store.Store
	width  int
	height int

	sessions []store.Session // newest first
	cursor   int
}

func newSessionsModel(s *store.Store) sessionsModel {
	return sessionsModel{store: s}
}

func (m *sessionsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type sessionsDataMsg struct {
	sessions []store.Session
}

func (m sessionsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		log := m.store.Sessions()
		// Reverse: the log is insertion-ordered, the view shows newest first.
		out := make([]store.Session, len(log))
		for i, s := range log {
			out[len(log)-1-i] = s
		}
		return sessionsDataMsg{sessions: out}
	}
}

func (m sessionsModel) update(msg tea.Msg) (sessionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsDataMsg:
		m.sessions = msg.sessions
		if m.cursor >= len(m.sessions) {
			m.cursor = max(0, len(m.sessions)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.sessions)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m sessionsModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Sessions")

	if len(m.sessions) == 0 {
		return panelStyle.Width(w).Render(
			title + "\n\n" + mutedStyle.Render("No sessions recorded yet"),
		)
	}

	visible := m.height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.sessions))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-7s %-10s %-14s %-4s %s",
		"Date", "Start", "Duration", "Category", "", "Note")))

	for i := start; i < end; i++ {
		s := m.sessions[i]
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		startStr := s.StartTime
		if t, err := time.Parse(time.RFC3339, s.StartTime); err == nil {
			startStr = t.Format("15:04")
		}
		marker := " "
		if s.Pomodoro {
			marker = accentStyle.Render("◴")
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-12s %-7s %-10s %-14s",
			cursor, s.Date, startStr, formatSeconds(s.Duration), s.Category))+
			fmt.Sprintf(" %s  %s", marker, mutedStyle.Render(s.Note)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d session(s)  ↑/↓: scroll", len(m.sessions))))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
