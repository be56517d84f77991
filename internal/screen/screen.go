// Package screen defines the contract between the router and the
// application's full-frame views.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/ui/layout"
)

// Screen is one routable view. The app frame owns the header and footer
// chrome; a screen only draws the content area between them.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update consumes a message and returns the screen that should stay
	// on the stack, which may be a different instance.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. width and height exclude the
	// frame chrome.
	View(width, height int) string

	// Title is the name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own hints in the footer.
// Screens that skip it get the default hint set.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
