package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focusdash/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	catCursor int

	formActive bool
	form       *huh.Form
	formType   string // "settings", "category"

	// Form values as pointers (survive value copies)
	dailyGoal  *string
	weeklyGoal *string
	workMin    *string
	breakMin   *string
	theme      *string
	timezone   *string
	newCat     *string
}

func newSettingsModel(s *store.Store) settingsModel {
	dg, wg, wm, bm := "", "", "", ""
	th, tz, nc := "", "", ""
	return settingsModel{
		store:      s,
		dailyGoal:  &dg,
		weeklyGoal: &wg,
		workMin:    &wm,
		breakMin:   &bm,
		theme:      &th,
		timezone:   &tz,
		newCat:     &nc,
	}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cats := m.store.Categories()
		switch {
		case key.Matches(msg, keys.Enter):
			return m.showSettingsForm()
		case key.Matches(msg, keys.New):
			return m.showCategoryForm()
		case key.Matches(msg, keys.Up):
			if m.catCursor > 0 {
				m.catCursor--
			}
		case key.Matches(msg, keys.Down):
			if m.catCursor < len(cats)-1 {
				m.catCursor++
			}
		case key.Matches(msg, keys.Delete):
			if m.catCursor < len(cats) {
				return m.removeCategory(cats[m.catCursor])
			}
		}
	}
	return m, nil
}

func (m settingsModel) removeCategory(name string) (settingsModel, tea.Cmd) {
	if err := m.store.RemoveCategory(name); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Cannot remove: %v", err), isError: true}
		}
	}
	if m.catCursor > 0 {
		m.catCursor--
	}
	return m, m.persist("Category removed")
}

// persist saves the store and reports the outcome on the status line.
func (m settingsModel) persist(okText string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Save(); err != nil {
			return statusMsg{text: fmt.Sprintf("Save failed, changes kept in memory: %v", err), isError: true}
		}
		return statusMsg{text: okText}
	}
}

func (m settingsModel) showSettingsForm() (settingsModel, tea.Cmd) {
	goals := m.store.Goals()
	st := m.store.Settings()

	*m.dailyGoal = strconv.FormatFloat(goals.Daily/3600, 'f', -1, 64)
	*m.weeklyGoal = strconv.FormatFloat(goals.Weekly/3600, 'f', -1, 64)
	*m.workMin = strconv.Itoa(st.Pomodoro.Work)
	*m.breakMin = strconv.Itoa(st.Pomodoro.Break)
	*m.theme = st.Theme
	*m.timezone = st.Timezone
	m.formType = "settings"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Daily goal (hours)").Value(m.dailyGoal),
			huh.NewInput().Title("Weekly goal (hours)").Value(m.weeklyGoal),
		).Title("Goals"),
		huh.NewGroup(
			huh.NewInput().Title("Pomodoro work (min)").Value(m.workMin),
			huh.NewInput().Title("Pomodoro break (min)").Value(m.breakMin),
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).Value(m.theme),
			huh.NewInput().Title("Timezone (IANA, blank = host)").Value(m.timezone),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) showCategoryForm() (settingsModel, tea.Cmd) {
	*m.newCat = ""
	m.formType = "category"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("New category").Value(m.newCat),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		switch m.formType {
		case "settings":
			return m.applySettings()
		case "category":
			return m.applyNewCategory()
		}
	}

	return m, cmd
}

func (m settingsModel) applySettings() (settingsModel, tea.Cmd) {
	daily, err1 := strconv.ParseFloat(strings.TrimSpace(*m.dailyGoal), 64)
	weekly, err2 := strconv.ParseFloat(strings.TrimSpace(*m.weeklyGoal), 64)
	if err1 != nil || err2 != nil {
		return m, func() tea.Msg {
			return statusMsg{text: "Goals must be numbers (hours)", isError: true}
		}
	}
	if err := m.store.SetGoals(daily*3600, weekly*3600); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Rejected: %v", err), isError: true}
		}
	}

	work, err1 := strconv.Atoi(strings.TrimSpace(*m.workMin))
	brk, err2 := strconv.Atoi(strings.TrimSpace(*m.breakMin))
	if err1 != nil || err2 != nil {
		return m, func() tea.Msg {
			return statusMsg{text: "Pomodoro durations must be whole minutes", isError: true}
		}
	}
	if err := m.store.SetPomodoro(work, brk); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Rejected: %v", err), isError: true}
		}
	}

	if err := m.store.SetTheme(*m.theme); err == nil {
		applyTheme(*m.theme)
	}
	m.store.SetTimezone(strings.TrimSpace(*m.timezone))

	return m, m.persist("Settings saved (timezone applies on next launch)")
}

func (m settingsModel) applyNewCategory() (settingsModel, tea.Cmd) {
	if err := m.store.AddCategory(*m.newCat); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Rejected: %v", err), isError: true}
		}
	}
	return m, m.persist("Category added")
}

func (m settingsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Settings")
		if m.formType == "category" {
			title = titleStyle.Render("New Category")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	goals := m.store.Goals()
	st := m.store.Settings()

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	rows = append(rows, m.row("Daily goal", formatHours(goals.Daily)))
	rows = append(rows, m.row("Weekly goal", formatHours(goals.Weekly)))
	rows = append(rows, m.row("Pomodoro work", fmt.Sprintf("%d min", st.Pomodoro.Work)))
	rows = append(rows, m.row("Pomodoro break", fmt.Sprintf("%d min", st.Pomodoro.Break)))
	rows = append(rows, m.row("Theme", st.Theme))
	tz := st.Timezone
	if tz == "" {
		tz = "host zone"
	}
	rows = append(rows, m.row("Timezone", tz))
	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Categories"))

	for i, c := range m.store.Categories() {
		cursor := "  "
		style := normalItemStyle
		if i == m.catCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+c))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("enter: edit settings  a: add category  d: remove category"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m settingsModel) row(label, value string) string {
	l := lipgloss.NewStyle().Width(18).Render(label)
	return fmt.Sprintf("  %s %s", mutedStyle.Render(l), highlightStyle.Render(value))
}
