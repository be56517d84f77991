package planner

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/learnloop/learnloop/internal/api"
)

// Fixed cost model defaults: minutes credited per lesson and per weekly
// test. Placeholder product values, kept overridable through Config.
const (
	DefaultLessonMinutes = 45
	DefaultTestMinutes   = 30
)

// Backend is the remote planning service the controller calls. Each
// controller operation issues at most one call and waits for it to finish
// before mutating any state. The production implementation is
// internal/client; tests substitute a fake.
type Backend interface {
	CreatePlan(ctx context.Context, userRequest string) (*api.Plan, error)
	StartSession(ctx context.Context, userID string) (*api.Session, error)
	TakeTest(ctx context.Context, userID string) (float64, error)
}

// Config carries the controller's cost model. Zero fields fall back to the
// package defaults.
type Config struct {
	// LessonMinutes is the time credited per lesson on a completed test.
	LessonMinutes int
	// TestMinutes is the time credited for the test itself.
	TestMinutes int
}

func (c Config) withDefaults() Config {
	if c.LessonMinutes == 0 {
		c.LessonMinutes = DefaultLessonMinutes
	}
	if c.TestMinutes == 0 {
		c.TestMinutes = DefaultTestMinutes
	}
	return c
}

// Controller is the session state machine. One instance per user session;
// construct with New. Safe for concurrent use, though the intended usage is
// event-driven with one action in flight at a time.
type Controller struct {
	backend Backend
	cfg     Config
	now     func() time.Time

	mu        sync.Mutex
	plan      *Plan
	session   *Session
	progress  Progress
	testTaken bool
	listeners []Listener
}

// New creates an idle controller with zeroed progress. The week counter
// starts at 1: the user is in their first week before any test is taken.
func New(backend Backend, cfg Config) *Controller {
	return &Controller{
		backend:  backend,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		progress: Progress{CurrentWeek: 1},
	}
}

// AddListener registers a state-change listener.
func (c *Controller) AddListener(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// State reports whether a session is active.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return StateActive
	}
	return StateIdle
}

// Plan returns a copy of the current plan, or nil if none exists.
func (c *Controller) Plan() *Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan.clone()
}

// ActiveSession returns a copy of the active session, or nil when idle.
func (c *Controller) ActiveSession() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.clone()
}

// Progress returns a copy of the accumulated progress.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress.clone()
}

// TestTaken reports whether the active session's weekly test has been
// taken. False when no session is active.
func (c *Controller) TestTaken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && c.testTaken
}

// CreatePlan asks the backend for a learning plan matching userRequest and
// stores it as the current plan, replacing any previous plan. Accumulated
// progress is kept. Fails with ErrEmptyRequest on blank input and passes
// backend failures through unchanged; on failure no state changes.
func (c *Controller) CreatePlan(ctx context.Context, userRequest string) (*Plan, error) {
	if strings.TrimSpace(userRequest) == "" {
		return nil, ErrEmptyRequest
	}

	wire, err := c.backend.CreatePlan(ctx, userRequest)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Title:       wire.Title,
		Timeline:    wire.Timeline,
		LessonCount: wire.Lessons,
		Goals:       append([]string(nil), wire.Goals...),
		UserID:      wire.UserID,
	}

	c.mu.Lock()
	c.plan = plan
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l.PlanCreated(*plan.clone())
	}
	return plan.clone(), nil
}

// StartSession begins a new weekly session for the current plan's user.
// Fails with ErrNoPlan before a plan exists and with ErrSessionActive while
// a session is running.
func (c *Controller) StartSession(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	if c.plan == nil {
		c.mu.Unlock()
		return nil, ErrNoPlan
	}
	if c.session != nil {
		c.mu.Unlock()
		return nil, ErrSessionActive
	}
	userID := c.plan.UserID
	c.mu.Unlock()

	wire, err := c.backend.StartSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:        wire.ID,
		StartTime: c.now(),
		Lessons:   append([]string(nil), wire.Lessons...),
	}

	c.mu.Lock()
	if c.session != nil {
		// Another start won the race while our call was in flight.
		c.mu.Unlock()
		return nil, ErrSessionActive
	}
	c.session = sess
	c.testTaken = false
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l.SessionStarted(*sess.clone())
	}
	return sess.clone(), nil
}

// TakeWeeklyTest runs the session's single weekly test. On success the
// returned score is folded into progress: it joins the weekly scores, the
// session's lessons count as completed, time spent grows by the fixed cost
// model, the week advances by one, and the recommendations are recomputed
// from this score. A second test in the same session fails with
// ErrTestTaken.
func (c *Controller) TakeWeeklyTest(ctx context.Context) (float64, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return 0, ErrNoSession
	}
	if c.testTaken {
		c.mu.Unlock()
		return 0, ErrTestTaken
	}
	userID := c.plan.UserID
	lessonCount := len(c.session.Lessons)
	c.mu.Unlock()

	score, err := c.backend.TakeTest(ctx, userID)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return 0, ErrNoSession
	}
	if c.testTaken {
		c.mu.Unlock()
		return 0, ErrTestTaken
	}
	c.testTaken = true
	c.progress.recordTest(score, lessonCount, c.cfg.LessonMinutes, c.cfg.TestMinutes)
	progress := c.progress.clone()
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l.ProgressUpdated(progress)
	}
	return score, nil
}

// EndSession closes the active session and returns its duration in whole
// minutes, rounded to nearest. No network call is made; the controller
// returns to idle and a new session may be started.
func (c *Controller) EndSession() (int, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return 0, ErrNoSession
	}
	elapsed := c.now().Sub(c.session.StartTime)
	minutes := int(math.Round(elapsed.Minutes()))
	c.session = nil
	c.testTaken = false
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l.SessionEnded(minutes)
	}
	return minutes, nil
}

// snapshotListeners copies the listener slice; callers must hold c.mu.
func (c *Controller) snapshotListeners() []Listener {
	return append([]Listener(nil), c.listeners...)
}
