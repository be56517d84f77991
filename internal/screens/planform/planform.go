package planform

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/ui/components"
	"github.com/learnloop/learnloop/internal/ui/layout"
)

// planCreatedMsg is sent when the create-plan call finishes.
type planCreatedMsg struct {
	Plan *planner.Plan
	Err  error
}

// PlanFormScreen asks for a free-text learning request and turns it into
// a learning plan.
type PlanFormScreen struct {
	ctrl    *planner.Controller
	input   components.TextInput
	busy    bool
	created *planner.Plan
	errMsg  string
}

var _ screen.Screen = (*PlanFormScreen)(nil)
var _ screen.KeyHintProvider = (*PlanFormScreen)(nil)

// New creates a new PlanFormScreen.
func New(ctrl *planner.Controller) *PlanFormScreen {
	return &PlanFormScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("I want to learn Python for data science...", 120),
	}
}

func (p *PlanFormScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PlanFormScreen) Title() string {
	return "Create Plan"
}

func (p *PlanFormScreen) KeyHints() []layout.KeyHint {
	if p.busy {
		return nil
	}
	if p.created != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create plan"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PlanFormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planCreatedMsg:
		return p.handleCreated(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Forward to input while the form is editable.
	if !p.busy && p.created == nil {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PlanFormScreen) handleCreated(msg planCreatedMsg) (screen.Screen, tea.Cmd) {
	p.busy = false
	if msg.Err != nil {
		p.errMsg = friendlyError(msg.Err)
		return p, nil
	}
	p.errMsg = ""
	p.created = msg.Plan
	return p, nil
}

func (p *PlanFormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// One call in flight at a time; keys wait until it resolves.
	if p.busy {
		return p, nil
	}

	switch msg.String() {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		if p.created != nil {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p.submit()
	}

	if p.created == nil {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// submit validates the request and kicks off plan creation.
func (p *PlanFormScreen) submit() (screen.Screen, tea.Cmd) {
	request := strings.TrimSpace(p.input.Value())
	if request == "" {
		p.errMsg = "Tell learnloop what you want to learn."
		return p, nil
	}
	p.errMsg = ""
	p.busy = true
	return p, p.createPlan(request)
}

// createPlan runs the create-plan call asynchronously.
func (p *PlanFormScreen) createPlan(request string) tea.Cmd {
	ctrl := p.ctrl
	return func() tea.Msg {
		plan, err := ctrl.CreatePlan(context.Background(), request)
		return planCreatedMsg{Plan: plan, Err: err}
	}
}

func friendlyError(err error) string {
	if errors.Is(err, planner.ErrEmptyRequest) {
		return "Tell learnloop what you want to learn."
	}
	return err.Error()
}
