package session

import (
	"github.com/learnloop/learnloop/internal/planner"
)

// sessionReadyMsg is sent when the start-session call finishes, or when an
// already active session has been picked up.
type sessionReadyMsg struct {
	Session *planner.Session
	Err     error
}

// testDoneMsg is sent when the weekly test call finishes.
type testDoneMsg struct {
	Score float64
	Err   error
}

// statusExpireMsg clears a transient status line. Seq guards against an
// older timer clearing a newer status.
type statusExpireMsg struct {
	Seq int
}
