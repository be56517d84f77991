package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/screen"
)

// Navigation messages. Screens emit these as commands; the router applies
// them on the next update.
type (
	// PushScreenMsg stacks a new screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg returns to the screen below the active one.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the active screen in place, keeping the
	// stack depth. Used for transitions that should not grow the
	// back-stack, like leaving the welcome splash.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router owns the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with initial as its root screen.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// top returns the active screen without removing it.
func (r *Router) top() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Active returns the screen currently receiving input.
func (r *Router) Active() screen.Screen { return r.top() }

// Depth returns how many screens are stacked.
func (r *Router) Depth() int { return len(r.stack) }

// Push stacks s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop reveals the screen below the active one. The root screen stays.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
		return s.Init()
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushScreenMsg:
		return r.Push(m.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(m.Screen)
	}

	active := r.top()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	if s := r.top(); s != nil {
		return s.View(width, height)
	}
	return ""
}
