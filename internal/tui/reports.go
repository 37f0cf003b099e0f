package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusdash/internal/core"
	"focusdash/internal/store"
)

type reportsModel struct {
	store     *store.Store
	analytics *core.Analytics
	width     int
	height    int

	series      []core.DayTotal
	breakdown   map[string]float64
	weeklyTotal float64

	chart barchart.Model
}

func newReportsModel(s *store.Store, a *core.Analytics) reportsModel {
	return reportsModel{
		store:     s,
		analytics: a,
		chart:     barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	series      []core.DayTotal
	breakdown   map[string]float64
	weeklyTotal float64
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return reportsDataMsg{
			series:      r.analytics.DailySeries(7),
			breakdown:   r.analytics.CategoryBreakdown(),
			weeklyTotal: r.analytics.WeeklyTotal(),
		}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.series = msg.series
		r.breakdown = msg.breakdown
		r.weeklyTotal = msg.weeklyTotal
		r.buildChart()
		return r, nil
	}
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(colorSubtle)

	var bars []barchart.BarData
	for _, d := range r.series {
		style := barStyle
		if d.Seconds == 0 {
			style = emptyStyle
		}
		bars = append(bars, barchart.BarData{
			Label: d.Date.Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  d.Day,
				Value: d.Seconds / 3600,
				Style: style,
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	goals := r.store.Goals()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		mutedStyle.Render(fmt.Sprintf("last 7 days · week %s of %s",
			formatHours(r.weeklyTotal), formatHours(goals.Weekly))),
	)

	chartView := r.chart.View()
	table := r.renderBreakdown(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", chartView, "", table),
	)
}

// renderBreakdown lists per-category totals over the whole log, largest
// first. Break sessions are part of these numbers.
func (r reportsModel) renderBreakdown(w int) string {
	if len(r.breakdown) == 0 {
		return mutedStyle.Render("  No sessions yet")
	}

	cats := make([]string, 0, len(r.breakdown))
	for c := range r.breakdown {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if r.breakdown[cats[i]] != r.breakdown[cats[j]] {
			return r.breakdown[cats[i]] > r.breakdown[cats[j]]
		}
		return cats[i] < cats[j]
	})

	var total float64
	for _, v := range r.breakdown {
		total += v
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %10s %7s", "Category", "Duration", "Share")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 36))))
	for _, c := range cats {
		secs := r.breakdown[c]
		share := 0.0
		if total > 0 {
			share = secs / total * 100
		}
		rows = append(rows, fmt.Sprintf("  %-16s %10s %6.1f%%", c, formatSeconds(secs), share))
	}
	return strings.Join(rows, "\n")
}
