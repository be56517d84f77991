package progress

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/api"
	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/ui/layout"
)

// Fetcher reads a user's progress from the backend. *client.Client
// implements it.
type Fetcher interface {
	Progress(ctx context.Context, userID string) (*api.Progress, error)
}

// progressLoadedMsg is sent when the progress fetch finishes.
type progressLoadedMsg struct {
	Progress *api.Progress
	Err      error
}

var errNoPlan = errors.New("no learning plan yet")

// ProgressScreen displays accumulated progress: totals, weekly scores,
// and recommendations.
type ProgressScreen struct {
	ctrl    *planner.Controller
	fetcher Fetcher
	prog    *api.Progress
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen. fetcher may be nil, in which case the
// controller's local progress is shown.
func New(ctrl *planner.Controller, fetcher Fetcher) *ProgressScreen {
	return &ProgressScreen{ctrl: ctrl, fetcher: fetcher}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return p.load()
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	if p.loaded && p.errMsg == "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Refresh"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

// load fetches progress from the backend for the current plan's user.
func (p *ProgressScreen) load() tea.Cmd {
	ctrl := p.ctrl
	fetcher := p.fetcher
	return func() tea.Msg {
		plan := ctrl.Plan()
		if plan == nil {
			return progressLoadedMsg{Err: errNoPlan}
		}
		if fetcher == nil {
			local := ctrl.Progress()
			return progressLoadedMsg{Progress: localProgress(local)}
		}
		prog, err := fetcher.Progress(context.Background(), plan.UserID)
		return progressLoadedMsg{Progress: prog, Err: err}
	}
}

// localProgress converts the controller's progress into the wire shape so
// the view has a single input type.
func localProgress(local planner.Progress) *api.Progress {
	return &api.Progress{
		LessonsCompleted: local.LessonsCompleted,
		AverageScore:     local.AverageScore,
		TimeSpent:        local.TimeSpent,
		CurrentWeek:      local.CurrentWeek,
		WeeklyScores:     local.WeeklyScores,
		Recommendations:  local.Recommendations,
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		p.loaded = true
		if msg.Err != nil {
			if errors.Is(msg.Err, errNoPlan) {
				p.errMsg = "Create a learning plan first."
			} else {
				p.errMsg = msg.Err.Error()
			}
		} else {
			p.errMsg = ""
			p.prog = msg.Progress
		}
		return p, nil

	case tea.KeyMsg:
		if p.errMsg != "" {
			// Any key goes back.
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if p.loaded {
				p.loaded = false
				p.prog = nil
				return p, p.load()
			}
		}
	}

	return p, nil
}
