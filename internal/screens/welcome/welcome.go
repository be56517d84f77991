package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/ui/layout"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

// One animation frame per tick.
const frameInterval = 100 * time.Millisecond

// Stage boundaries in frames: the name types itself out one letter per
// frame, then the loop line draws one step every other frame, then the
// tagline and key hint appear.
const (
	nameFrames  = 9
	cycleFrames = 8
)

// loopSteps is the weekly cycle the app is named for.
var loopSteps = []string{"plan", "learn", "test", "repeat"}

type tickMsg time.Time

// WelcomeScreen plays a short splash animation before handing off to the
// home screen. Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	frame        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Any key", Description: "Skip"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.tick()
}

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		// Ticks never stop; the hint pulse runs off the frame counter.
		w.frame++
		return w, w.tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// transition swaps in the home screen exactly once.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.renderName(width)}

	if w.frame >= nameFrames {
		parts = append(parts, "", w.renderLoop())
	}
	if w.frame >= nameFrames+cycleFrames {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn anything, one week at a time.")
		parts = append(parts, "", tagline, "", w.renderHint())
	}

	content := strings.Join(parts, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderName types the app name out letter by letter, then swaps in the
// full banner once every letter has landed.
func (w *WelcomeScreen) renderName(width int) string {
	if w.frame >= nameFrames {
		return RenderBanner(width)
	}

	letters := []rune(appName)
	n := w.frame
	if n > len(letters) {
		n = len(letters)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(letters[i])
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(b.String())
}

// renderLoop draws the weekly cycle one step every other frame.
func (w *WelcomeScreen) renderLoop() string {
	shown := (w.frame - nameFrames) / 2
	if shown > len(loopSteps) {
		shown = len(loopSteps)
	}

	stepStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	arrowStyle := theme.Dim

	steps := make([]string, 0, len(loopSteps))
	for i := 0; i < shown; i++ {
		steps = append(steps, stepStyle.Render(loopSteps[i]))
	}
	line := strings.Join(steps, arrowStyle.Render(" > "))
	if shown == len(loopSteps) {
		line += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("⟳")
	}
	return line
}

// renderHint pulses the continue hint on a half-second cycle.
func (w *WelcomeScreen) renderHint() string {
	color := theme.TextDim
	if (w.frame/5)%2 == 0 {
		color = theme.Text
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Italic(true).
		Render("press any key to begin")
}
