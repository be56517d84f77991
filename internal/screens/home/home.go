package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/screens/planform"
	"github.com/learnloop/learnloop/internal/screens/progress"
	sessionscreen "github.com/learnloop/learnloop/internal/screens/session"
	"github.com/learnloop/learnloop/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	ctrl *planner.Controller
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. fetcher supplies the progress screen's
// backend reads and may be nil when no backend is reachable.
func New(ctrl *planner.Controller, fetcher progress.Fetcher) *HomeScreen {
	items := []components.MenuItem{
		{Label: "CREATE PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: planform.New(ctrl)}
			}
		}},
		{Label: "START SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(ctrl)}
			}
		}},
		{Label: "VIEW PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(ctrl, fetcher)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ctrl: ctrl,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// menuLabels returns the labels to render. The session entry flips to
// RESUME while a session is running; the action is the same either way
// because the session screen picks up an active session on its own.
func (h *HomeScreen) menuLabels() []string {
	labels := []string{"CREATE PLAN", "START SESSION", "VIEW PROGRESS", "EXIT"}
	if h.ctrl.State() == planner.StateActive {
		labels[1] = "RESUME SESSION"
	}
	return labels
}
