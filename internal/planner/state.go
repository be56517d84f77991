// Package planner implements the session controller at the heart of
// learnloop: it owns the current learning plan, the active session, and the
// accumulated progress, and drives the Idle -> Active -> Idle session
// lifecycle. All remote work goes through the Backend interface; state is
// only mutated after a call has succeeded, so a failed action leaves the
// controller exactly as it was.
package planner

import "time"

// State is the session lifecycle state of the controller.
type State int

const (
	// StateIdle means no session is active. Starting a session requires a plan.
	StateIdle State = iota
	// StateActive means a session is running. At most one session is active
	// at a time; StartSession on an active controller is rejected.
	StateActive
)

// String returns "idle" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Plan is a generated learning plan. It is immutable once stored on the
// controller; a later CreatePlan replaces it wholesale.
type Plan struct {
	Title       string
	Timeline    string // human label, e.g. "3 months"
	LessonCount int
	Goals       []string
	UserID      string
}

// clone returns a deep copy so callers cannot alias controller state.
func (p *Plan) clone() *Plan {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Goals = append([]string(nil), p.Goals...)
	return &cp
}

// Session is one active weekly unit of work: a start timestamp and the
// ordered lesson names for the week. Cleared when the session ends.
type Session struct {
	ID        string
	StartTime time.Time
	Lessons   []string
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Lessons = append([]string(nil), s.Lessons...)
	return &cp
}
