package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	switch s.phase {
	case phaseLoading:
		return renderLoading(width)
	case phaseTesting:
		return renderTesting(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	case phaseConfirmEnd:
		return renderConfirmEnd(width)
	case phaseSummary:
		return s.renderSummary(width)
	}
	return s.renderLessons(width)
}

// renderLessons renders the active session: info line, the week's lesson
// list, and any transient status.
func (s *SessionScreen) renderLessons(width int) string {
	prog := s.ctrl.Progress()
	plan := s.ctrl.Plan()

	var b strings.Builder

	planTitle := ""
	if plan != nil {
		planTitle = plan.Title
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Week %d · %s", prog.CurrentWeek, planTitle))

	var infoRight string
	if s.ctrl.TestTaken() {
		infoRight = lipgloss.NewStyle().
			Foreground(theme.Success).
			Render(fmt.Sprintf("test done · %.0f%%", s.score))
	} else {
		infoRight = theme.Dim.Render("weekly test pending")
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	b.WriteString(theme.Strong.
		Width(width).
		Align(lipgloss.Center).
		Render("This week's lessons"))
	b.WriteString("\n\n")

	if s.sess != nil {
		var lessons []string
		for i, lesson := range s.sess.Lessons {
			lessons = append(lessons, fmt.Sprintf("%d. %s", i+1, lesson))
		}
		block := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(strings.Join(lessons, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.status))
	}

	return b.String()
}

// scoreBand maps a test score to a feedback label and color. The cutoffs
// line up with the recommendation bands.
func scoreBand(score float64) (string, color.Color) {
	switch {
	case score >= 85:
		return "Excellent work!", theme.Success
	case score >= 70:
		return "Good progress!", theme.Secondary
	default:
		return "Keep practicing.", theme.Accent
	}
}

// renderFeedback renders the score overlay after the weekly test.
func (s *SessionScreen) renderFeedback(width int) string {
	label, col := scoreBand(s.score)

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Strong.
		Width(width).
		Align(lipgloss.Center).
		Render("Test complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(col).
		Bold(true).
		Render(fmt.Sprintf("Score: %.0f%%", s.score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(col).
		Render(label))
	b.WriteString("\n\n")

	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("Press any key to continue..."))

	return b.String()
}

// renderConfirmEnd renders the end-session confirmation dialog.
func renderConfirmEnd(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(theme.Strong.
		Width(width).
		Align(lipgloss.Center).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("Your progress is kept either way."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderSummary renders the end-of-session summary.
func (s *SessionScreen) renderSummary(width int) string {
	prog := s.ctrl.Progress()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Duration: %d min", s.minutes)))
	b.WriteString("\n\n")

	if s.tookTest {
		label, col := scoreBand(s.score)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(col).
			Render(fmt.Sprintf("This week's score: %.0f%%  (%s)", s.score, label)))
	} else {
		b.WriteString(theme.Dim.
			Width(width).
			Align(lipgloss.Center).
			Italic(true).
			Render("No test taken this week."))
	}
	b.WriteString("\n\n")

	if len(prog.Recommendations) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", 40))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Dim.Render("Recommendations")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		var recs []string
		for _, rec := range prog.Recommendations {
			recs = append(recs, "▸ "+rec)
		}
		block := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(strings.Join(recs, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("Press Enter to return home."))

	return b.String()
}

// renderLoading renders the state while the session starts.
func renderLoading(width int) string {
	return theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n  Starting your session...")
}

// renderTesting renders the state while the weekly test runs.
func renderTesting(width int) string {
	return theme.Dim.
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n  Taking the weekly test...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
