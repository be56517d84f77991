package progress

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/ui/components"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

func (p *ProgressScreen) View(width, height int) string {
	var body string
	switch {
	case p.errMsg != "":
		body = renderError(p.errMsg)
	case !p.loaded || p.prog == nil:
		body = renderLoading()
	default:
		body = p.renderProgress(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func renderLoading() string {
	return theme.Dim.Render("Loading progress...")
}

func renderError(msg string) string {
	errStyle := lipgloss.NewStyle().Foreground(theme.Error)
	return errStyle.Render(msg) + "\n\n" + theme.Dim.Render("Press any key to go back.")
}

func (p *ProgressScreen) renderProgress(width int) string {
	sections := []string{
		renderStats(p.prog.LessonsCompleted, p.prog.AverageScore, p.prog.TimeSpent, p.prog.CurrentWeek, len(p.prog.WeeklyScores)),
		renderWeeklyScores(p.prog.WeeklyScores, width),
	}
	if rec := renderRecommendations(p.prog.Recommendations); rec != "" {
		sections = append(sections, rec)
	}
	return strings.Join(sections, "\n\n")
}

func renderStats(lessons int, avg float64, minutes, week, tests int) string {
	avgText := "--"
	if tests > 0 {
		avgText = fmt.Sprintf("%.0f%%", avg)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Current week", fmt.Sprintf("%d", week)},
		{"Lessons completed", fmt.Sprintf("%d", lessons)},
		{"Average score", avgText},
		{"Time spent", fmtMinutes(minutes)},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Dim.Render(fmt.Sprintf("%-19s", row.label)))
		b.WriteString(theme.Strong.Render(row.value))
	}
	return b.String()
}

func renderWeeklyScores(scores []float64, width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	header := headerStyle.Render("Weekly scores")

	if len(scores) == 0 {
		empty := theme.Dim.Italic(true).Render("No tests taken yet.")
		return header + "\n" + empty
	}

	barWidth := min(width-30, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(header)
	for i, score := range scores {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("Week %d", i+1),
			Percent:     score / 100,
			ShowPercent: true,
			Width:       barWidth,
		}
		b.WriteString("\n")
		b.WriteString(bar.View())
	}
	return b.String()
}

func renderRecommendations(recs []string) string {
	if len(recs) == 0 {
		return ""
	}
	headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	recStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Recommendations"))
	for _, rec := range recs {
		b.WriteString("\n")
		b.WriteString(recStyle.Render("▸ " + rec))
	}
	return b.String()
}

// fmtMinutes renders a minute total as "45m", "2h", or "5h 30m".
func fmtMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
