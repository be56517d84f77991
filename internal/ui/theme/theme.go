// Package theme holds the shared color palette and the few base styles
// reused across screens. Screens compose most styles inline from the
// palette; only styles needed in more than one package live here.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Brand colors.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#F59E0B") // amber
)

// Feedback colors.
var (
	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#EF4444")
)

// Neutral tones for text and surfaces, readable on dark terminals.
var (
	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0F172A")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

// Base styles. Callers extend these with Width, Align and so on;
// lipgloss styles copy on modification, so the bases stay untouched.
var (
	// Dim renders secondary text: hints, labels, captions.
	Dim = lipgloss.NewStyle().Foreground(TextDim)

	// Strong renders emphasized values inside dim surroundings.
	Strong = lipgloss.NewStyle().Foreground(Text).Bold(true)

	// Panel is the bordered box used for cards and grouped content.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
