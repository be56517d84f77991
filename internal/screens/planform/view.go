package planform

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

func (p *PlanFormScreen) View(width, height int) string {
	if p.busy {
		return renderCreating(width)
	}
	if p.created != nil {
		return renderCreated(p.created, width)
	}
	return p.renderForm(width)
}

// renderForm renders the editable request form.
func (p *PlanFormScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Strong.
		Width(width).
		Align(lipgloss.Center).
		Render("What do you want to learn?"))
	b.WriteString("\n")
	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Italic(true).
		Render("try: python for data science · javascript · machine learning · web development"))
	b.WriteString("\n\n")

	inputBox := theme.Panel.
		BorderForeground(theme.Primary).
		Width(min(width-8, 64)).
		Padding(0, 1).
		Render(p.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputBox))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.errMsg))
	}

	return b.String()
}

// renderCreating renders the blocking state while the call is in flight.
func renderCreating(width int) string {
	return theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n  Creating your learning plan...")
}

// renderCreated renders the freshly created plan.
func renderCreated(plan *planner.Plan, width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Plan created!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Strong.
		Width(width).
		Align(lipgloss.Center).
		Render(plan.Title))
	b.WriteString("\n")
	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s · %d lessons", plan.Timeline, plan.LessonCount)))
	b.WriteString("\n\n")

	for _, goal := range plan.Goals {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("▸ "+goal)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("Press Enter to return home."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
