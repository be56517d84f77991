package planner

import "errors"

// Controller precondition errors. Every one of these is recoverable: the
// triggering action is aborted without touching state and may be retried.
var (
	// ErrEmptyRequest is returned by CreatePlan for a blank or
	// whitespace-only learning request.
	ErrEmptyRequest = errors.New("learning request is empty")

	// ErrNoPlan is returned by StartSession when no plan has been created.
	ErrNoPlan = errors.New("no learning plan exists")

	// ErrNoSession is returned by TakeWeeklyTest and EndSession when no
	// session is active.
	ErrNoSession = errors.New("no active session")

	// ErrSessionActive is returned by StartSession while a session is
	// already running.
	ErrSessionActive = errors.New("a session is already active")

	// ErrTestTaken is returned by TakeWeeklyTest when the session's single
	// weekly test has already been taken.
	ErrTestTaken = errors.New("weekly test already taken this session")
)
