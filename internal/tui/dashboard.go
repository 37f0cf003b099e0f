package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusdash/internal/core"
	"focusdash/internal/store"
)

// dashboardModel owns the runtime timer state for this application run and
// hands it to the core on every interaction. Nothing here is persisted; the
// store only changes through engine commits and settings edits.
type dashboardModel struct {
	store     *store.Store
	timer     *core.Timer
	engine    *core.Engine
	analytics *core.Analytics

	width  int
	height int

	pomodoroMode bool
	category     string
	note         string

	// Category picker state
	picking      bool
	pickerCursor int

	// Note form
	formActive bool
	form       *huh.Form
	noteDraft  *string

	dailyBar  progress.Model
	weeklyBar progress.Model
}

func newDashboardModel(s *store.Store, t *core.Timer, e *core.Engine, a *core.Analytics) dashboardModel {
	draft := ""
	return dashboardModel{
		store:     s,
		timer:     t,
		engine:    e,
		analytics: a,
		noteDraft: &draft,
		dailyBar:  progress.New(progress.WithDefaultGradient()),
		weeklyBar: progress.New(progress.WithDefaultGradient()),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	barWidth := w - 30
	if barWidth < 10 {
		barWidth = 10
	}
	d.dailyBar.Width = barWidth
	d.weeklyBar.Width = barWidth
}

func (d dashboardModel) isRunning() bool { return d.timer.Running() }
func (d dashboardModel) onBreak() bool   { return d.timer.OnBreak() }
func (d dashboardModel) elapsed() float64 {
	return d.timer.Elapsed()
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateNoteForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		d.timer.Tick()
		if d.pomodoroMode && d.timer.Running() {
			pc := d.store.Settings().Pomodoro
			ev := d.timer.BoundaryCheck(float64(pc.Work)*60, float64(pc.Break)*60)
			if ev != core.PhaseNone {
				return d, func() tea.Msg { return phaseMsg{event: ev} }
			}
		}
		return d, nil

	case tea.KeyMsg:
		if d.picking {
			return d.updatePicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Start):
			if d.timer.Running() {
				return d, nil
			}
			cats := d.store.Categories()
			if len(cats) == 1 {
				return d.startTimer(cats[0])
			}
			d.picking = true
			d.pickerCursor = 0
			return d, nil

		case key.Matches(msg, keys.Stop):
			return d.stopTimer()

		case key.Matches(msg, keys.Pomodoro):
			if d.timer.Running() {
				return d, func() tea.Msg {
					return statusMsg{text: "Stop the timer before switching pomodoro mode", isError: true}
				}
			}
			d.pomodoroMode = !d.pomodoroMode
			label := "off"
			if d.pomodoroMode {
				label = "on"
			}
			return d, func() tea.Msg { return statusMsg{text: "Pomodoro mode " + label} }

		case key.Matches(msg, keys.Note):
			return d.showNoteForm()
		}
	}
	return d, nil
}

func (d dashboardModel) updatePicker(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	cats := d.store.Categories()
	switch {
	case key.Matches(msg, keys.Up):
		if d.pickerCursor > 0 {
			d.pickerCursor--
		}
	case key.Matches(msg, keys.Down):
		if d.pickerCursor < len(cats)-1 {
			d.pickerCursor++
		}
	case key.Matches(msg, keys.Enter):
		d.picking = false
		return d.startTimer(cats[d.pickerCursor])
	case key.Matches(msg, keys.Back):
		d.picking = false
	}
	return d, nil
}

func (d dashboardModel) startTimer(category string) (dashboardModel, tea.Cmd) {
	d.category = category
	d.timer.Start()
	return d, func() tea.Msg { return timerStartedMsg{} }
}

func (d dashboardModel) stopTimer() (dashboardModel, tea.Cmd) {
	if !d.timer.Running() {
		return d, nil
	}
	elapsed, wasBreak := d.timer.Stop()
	if err := d.engine.Commit(elapsed, wasBreak, d.category, d.note, d.pomodoroMode); err != nil {
		return d, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save failed, state kept in memory: %v", err), isError: true}
		}
	}
	d.note = ""
	*d.noteDraft = ""
	return d, func() tea.Msg { return timerStoppedMsg{committed: elapsed, onBreak: wasBreak} }
}

func (d dashboardModel) showNoteForm() (dashboardModel, tea.Cmd) {
	*d.noteDraft = d.note
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Session note").Value(d.noteDraft),
		),
	).WithShowHelp(true).WithShowErrors(true)
	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateNoteForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		d.note = *d.noteDraft
		d.form = nil
		return d, nil
	}
	return d, cmd
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	w := d.width - 4

	if d.formActive && d.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Session Note"), "", d.form.View()),
		)
	}

	countdowns := d.renderCountdownPanel(w)
	timerPanel := d.renderTimerPanel(w)
	goalsPanel := d.renderGoalsPanel(w)

	var bottom string
	if d.picking {
		bottom = d.renderCategoryPicker(w)
	} else {
		bottom = d.renderInfoPanel(w)
	}

	return lipgloss.JoinVertical(lipgloss.Left, countdowns, timerPanel, goalsPanel, bottom)
}

func (d dashboardModel) renderCountdownPanel(w int) string {
	today := fmt.Sprintf("%s  %s",
		mutedStyle.Render("Remaining today"),
		highlightStyle.Render(formatHMS(d.analytics.RemainingToday())),
	)
	month := fmt.Sprintf("%s  %s",
		mutedStyle.Render("Remaining this month"),
		highlightStyle.Render(formatHMS(d.analytics.RemainingMonth())),
	)
	streak := fmt.Sprintf("%s  %s",
		mutedStyle.Render("Streak"),
		successStyle.Render(fmt.Sprintf("%d day(s)", d.analytics.Streak())),
	)
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, today, month, streak),
	)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	var timeDisplay, indicator string

	if d.timer.Running() {
		live := d.timer.Elapsed()
		if d.timer.OnBreak() {
			timeDisplay = timerBreakStyle.Width(w - 6).Render(formatSeconds(live))
			indicator = warningStyle.Render("☕  BREAK")
		} else {
			timeDisplay = timerRunningStyle.Width(w - 6).Render(formatSeconds(live))
			indicator = successStyle.Render("●  FOCUS")
		}
	} else {
		timeDisplay = timerStyle.Width(w - 6).Render("00:00:00")
		indicator = mutedStyle.Render("■  IDLE — press s to start")
	}

	todayTotal := d.analytics.TodayTotal()
	if d.timer.Running() && !d.timer.OnBreak() {
		todayTotal += d.timer.Elapsed()
	}
	todayLine := mutedStyle.Render("Today ") + highlightStyle.Render(formatSeconds(todayTotal))

	meta := d.renderMetaLine()

	content := lipgloss.JoinVertical(lipgloss.Center, timeDisplay, indicator, todayLine, meta)
	if d.timer.Running() {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderMetaLine() string {
	var parts []string
	if d.category != "" && d.timer.Running() {
		parts = append(parts, highlightStyle.Render(d.category))
	}
	if d.pomodoroMode {
		pc := d.store.Settings().Pomodoro
		parts = append(parts, accentStyle.Render(fmt.Sprintf("pomodoro %d/%d", pc.Work, pc.Break)))
	}
	if d.note != "" {
		parts = append(parts, mutedStyle.Render("note: "+d.note))
	}
	return strings.Join(parts, mutedStyle.Render("  ·  "))
}

func (d dashboardModel) renderGoalsPanel(w int) string {
	daily, weekly := d.analytics.GoalProgress()
	goals := d.store.Goals()

	dailyLine := fmt.Sprintf("%s %s  %s / %s",
		mutedStyle.Render("Daily "),
		d.dailyBar.ViewAs(daily),
		formatHours(d.analytics.TodayTotal()),
		formatHours(goals.Daily),
	)
	weeklyLine := fmt.Sprintf("%s %s  %s / %s",
		mutedStyle.Render("Weekly"),
		d.weeklyBar.ViewAs(weekly),
		formatHours(d.analytics.WeeklyTotal()),
		formatHours(goals.Weekly),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Goals"), dailyLine, weeklyLine),
	)
}

func (d dashboardModel) renderInfoPanel(w int) string {
	hint := "s: start  x: stop  p: pomodoro  n: note"
	return panelStyle.Width(w).Render(mutedStyle.Render(hint))
}

func (d dashboardModel) renderCategoryPicker(w int) string {
	title := titleStyle.Render("Select Category")

	var rows []string
	rows = append(rows, title)
	for i, c := range d.store.Categories() {
		cursor := "  "
		style := normalItemStyle
		if i == d.pickerCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+c))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: select  esc: cancel"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
