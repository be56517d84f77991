package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/ui/layout"
)

// statusDur is how long a transient status line stays visible.
const statusDur = 3 * time.Second

// phase is the screen's display state.
type phase int

const (
	phaseLoading phase = iota
	phaseActive
	phaseTesting
	phaseFeedback
	phaseConfirmEnd
	phaseSummary
)

// SessionScreen drives one weekly learning session: the lesson list, the
// single weekly test, and ending the session.
type SessionScreen struct {
	ctrl      *planner.Controller
	phase     phase
	sess      *planner.Session
	score     float64
	tookTest  bool
	minutes   int
	errMsg    string
	status    string
	statusSeq int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a new SessionScreen.
func New(ctrl *planner.Controller) *SessionScreen {
	return &SessionScreen{ctrl: ctrl}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *SessionScreen) Title() string {
	return "Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseActive:
		if s.ctrl.TestTaken() {
			return []layout.KeyHint{
				{Key: "E", Description: "End session"},
				{Key: "Esc", Description: "Home"},
			}
		}
		return []layout.KeyHint{
			{Key: "T", Description: "Take test"},
			{Key: "E", Description: "End session"},
			{Key: "Esc", Description: "Home"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseConfirmEnd:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case testDoneMsg:
		return s.handleTestDone(msg)

	case statusExpireMsg:
		if msg.Seq == s.statusSeq {
			s.status = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// startSession resumes the active session if there is one, otherwise asks
// the controller to start a new one.
func (s *SessionScreen) startSession() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		if active := ctrl.ActiveSession(); active != nil {
			return sessionReadyMsg{Session: active}
		}
		sess, err := ctrl.StartSession(context.Background())
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (s *SessionScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = friendlyError(msg.Err)
		return s, nil
	}
	s.sess = msg.Session
	s.phase = phaseActive
	return s, nil
}

func (s *SessionScreen) handleTestDone(msg testDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseActive
		if errors.Is(msg.Err, planner.ErrTestTaken) {
			return s, s.setStatus("The weekly test is already done.")
		}
		return s, s.setStatus(msg.Err.Error())
	}
	s.score = msg.Score
	s.tookTest = true
	s.phase = phaseFeedback
	return s, nil
}

// takeTest runs the weekly test call asynchronously.
func (s *SessionScreen) takeTest() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		score, err := ctrl.TakeWeeklyTest(context.Background())
		return testDoneMsg{Score: score, Err: err}
	}
}

// setStatus shows a transient status line for a few seconds.
func (s *SessionScreen) setStatus(text string) tea.Cmd {
	s.status = text
	s.statusSeq++
	seq := s.statusSeq
	return tea.Tick(statusDur, func(time.Time) tea.Msg {
		return statusExpireMsg{Seq: seq}
	})
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseLoading, phaseTesting:
		// A call is in flight; keys wait until it resolves.
		return s, nil

	case phaseFeedback:
		// Any key dismisses the score overlay.
		s.phase = phaseActive
		return s, nil

	case phaseConfirmEnd:
		switch key {
		case "y", "Y":
			return s.endSession()
		case "n", "N", "esc":
			s.phase = phaseActive
			return s, nil
		}
		return s, nil

	case phaseSummary:
		switch key {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Active phase.
	switch key {
	case "t", "T":
		if s.ctrl.TestTaken() {
			return s, s.setStatus("The weekly test is already done.")
		}
		s.phase = phaseTesting
		return s, s.takeTest()
	case "e", "E":
		s.phase = phaseConfirmEnd
		return s, nil
	case "esc":
		// Leave without ending; the session stays active.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// endSession closes the session and shows the summary. No network call is
// involved, so this happens inline.
func (s *SessionScreen) endSession() (screen.Screen, tea.Cmd) {
	minutes, err := s.ctrl.EndSession()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.minutes = minutes
	s.phase = phaseSummary
	return s, nil
}

func friendlyError(err error) string {
	if errors.Is(err, planner.ErrNoPlan) {
		return "Create a learning plan first."
	}
	return err.Error()
}
