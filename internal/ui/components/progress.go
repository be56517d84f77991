package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/ui/theme"
)

// ProgressBar renders a labeled horizontal bar. Percent is in [0, 1];
// out-of-range values are clamped. Width is the total rendered width
// including label and the optional percent suffix.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// View renders the bar.
func (p ProgressBar) View() string {
	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %d%%", int(pct*100))
	}

	// The track absorbs whatever width the label and suffix leave over,
	// with a floor so tiny frames still show some bar.
	track := p.Width - lipgloss.Width(b.String()) - len(suffix)
	if track < 4 {
		track = 4
	}

	filled := int(pct*float64(track) + 0.5)
	if filled > track {
		filled = track
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", track-filled)))

	if suffix != "" {
		b.WriteString(theme.Dim.Render(suffix))
	}
	return b.String()
}
