package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/ui/theme"
)

// Smallest terminal the UI lays out for.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer bar.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the window with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small.\n\nNeed at least %d x %d,\nhave %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

// bar is the bordered single-line box shared by the header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// justify lays left, center, and right out across innerWidth columns,
// keeping at least one space between groups when the line overflows.
func justify(left, center, right string, innerWidth int) string {
	lw := lipgloss.Width(left)
	cw := lipgloss.Width(center)
	rw := lipgloss.Width(right)

	gapL := (innerWidth-cw)/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := innerWidth - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader draws the top bar: brand on the left, the screen title
// centered, current week and average test score on the right.
func RenderHeader(title string, week int, avgScore float64, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  learnloop")

	name := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	avg := "--"
	if avgScore > 0 {
		avg = fmt.Sprintf("%g%%", avgScore)
	}
	stats := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("Week %d", week)) +
		theme.Dim.Render(" · avg ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(avg)

	inner := width - 4 // border and padding columns
	if inner < 0 {
		inner = 0
	}
	return bar(width).Render(justify(brand, name, stats, inner))
}

// RenderFooter draws the bottom bar from the active screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := theme.Strong
	descStyle := theme.Dim
	sep := descStyle.Render("  ·  ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content, and footer into a full window,
// padding the content region so the footer stays pinned to the bottom.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	middle := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return header + "\n" + middle + "\n" + footer
}
