package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/screens/home"
	"github.com/learnloop/learnloop/internal/screens/progress"
	"github.com/learnloop/learnloop/internal/screens/welcome"
	"github.com/learnloop/learnloop/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	// Controller drives all planning actions.
	Controller *planner.Controller
	// Progress serves the progress screen's backend reads; may be nil.
	Progress progress.Fetcher
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *planner.Controller
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.Controller, opts.Progress)
	})
	return AppModel{
		router: router.New(splash),
		ctrl:   opts.Controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens handle esc themselves; only the kill switch is global.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header, footer := m.chrome(active)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// chrome renders the header and footer framing the active screen. The
// header always reflects live progress so week and average stay current
// across screens.
func (m AppModel) chrome(active screen.Screen) (header, footer string) {
	title := ""
	if active != nil {
		title = active.Title()
	}
	prog := m.ctrl.Progress()
	header = layout.RenderHeader(title, prog.CurrentWeek, prog.AverageScore, m.width)
	footer = layout.RenderFooter(m.footerHints(active), m.width)
	return header, footer
}

// footerHints uses the active screen's hints when it provides them, falling
// back to stack-position defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
