package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	plan := h.ctrl.Plan()
	prog := h.ctrl.Progress()

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderPlanCard(plan, cw))
	sections = append(sections, renderStatsBar(prog, cw))
	sections = append(sections, renderMenu(h.menuLabels(), h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderTitle returns the brand block shown at the top of the home screen.
func renderTitle(cw int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L E A R N L O O P")
	sub := theme.Dim.Render("weekly learning planner")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(brand + "\n" + sub)
}

// renderPlanCard renders the current plan in a bordered card, or a hint
// line when no plan exists yet.
func renderPlanCard(plan *planner.Plan, cw int) string {
	if plan == nil {
		return theme.Dim.
			Width(cw).
			Align(lipgloss.Center).
			Italic(true).
			Render("No learning plan yet. Create one to get started.")
	}

	title := theme.Strong.Render(plan.Title)
	meta := theme.Dim.Render(fmt.Sprintf("%s · %d lessons", plan.Timeline, plan.LessonCount))

	body := title + "\n" + meta
	if goals := goalsLine(plan.Goals); goals != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(goals)
	}

	return theme.Panel.
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

// goalsLine compresses the goal list into a single display line.
func goalsLine(goals []string) string {
	if len(goals) == 0 {
		return ""
	}
	shown := goals
	extra := 0
	if len(goals) > 2 {
		shown = goals[:2]
		extra = len(goals) - 2
	}
	line := strings.Join(shown, " · ")
	if extra > 0 {
		line += fmt.Sprintf(" · +%d more", extra)
	}
	return line
}

// renderStatsBar renders the progress stats in a bordered box matching
// content width.
func renderStatsBar(prog planner.Progress, cw int) string {
	weekStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lessonStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	timeStyle := theme.Dim

	avg := "--"
	if len(prog.WeeklyScores) > 0 {
		avg = fmt.Sprintf("%.0f%%", prog.AverageScore)
	}

	stats := fmt.Sprintf("%s  %s  %s  %s",
		weekStyle.Render(fmt.Sprintf("◆ WEEK %d", prog.CurrentWeek)),
		lessonStyle.Render(fmt.Sprintf("▤ %d LESSONS", prog.LessonsCompleted)),
		scoreStyle.Render("★ AVG "+avg),
		timeStyle.Render("◷ "+fmtMinutes(prog.TimeSpent)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// fmtMinutes formats a minute count as "45M" or "5H 30M".
func fmtMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dM", m)
	}
	if m%60 == 0 {
		return fmt.Sprintf("%dH", m/60)
	}
	return fmt.Sprintf("%dH %dM", m/60, m%60)
}

// renderMenu renders menu items as simple highlighted lines.
func renderMenu(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
