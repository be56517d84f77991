// Package track keeps the server's per-user learning records: the last
// created plan, the active session, and accumulated test results. All
// state is in memory; a restart starts everyone fresh.
package track

import (
	"sync"

	"github.com/learnloop/learnloop/internal/api"
)

// Config carries the session cost model applied when a test is recorded.
type Config struct {
	LessonMinutes  int
	TestMinutes    int
	LessonsPerWeek int
}

// DefaultConfig returns the standard cost model.
func DefaultConfig() Config {
	return Config{LessonMinutes: 45, TestMinutes: 30, LessonsPerWeek: 3}
}

func (c Config) withDefaults() Config {
	if c.LessonMinutes == 0 {
		c.LessonMinutes = 45
	}
	if c.TestMinutes == 0 {
		c.TestMinutes = 30
	}
	if c.LessonsPerWeek == 0 {
		c.LessonsPerWeek = 3
	}
	return c
}

// record is one user's accumulated state.
type record struct {
	plan          *api.Plan
	activeSession *api.Session
	weeklyScores  []float64
	lessonsDone   int
	timeSpent     int
}

// Tracker is a mutex-guarded map of user records.
type Tracker struct {
	mu    sync.Mutex
	cfg   Config
	users map[string]*record
}

// New creates an empty tracker.
func New(cfg Config) *Tracker {
	return &Tracker{
		cfg:   cfg.withDefaults(),
		users: make(map[string]*record),
	}
}

func (t *Tracker) user(userID string) *record {
	r, ok := t.users[userID]
	if !ok {
		r = &record{}
		t.users[userID] = r
	}
	return r
}

// RecordPlan stores the user's current plan, replacing any previous one.
// Scores and time already accumulated are kept.
func (t *Tracker) RecordPlan(userID string, plan *api.Plan) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.user(userID).plan = plan
}

// StartSession marks sess as the user's active session.
func (t *Tracker) StartSession(userID string, sess *api.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.user(userID).activeSession = sess
}

// EndSession clears the user's active session. Unknown users and users
// with no active session are a no-op.
func (t *Tracker) EndSession(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok := t.users[userID]; ok {
		r.activeSession = nil
	}
}

// RecordTest folds one weekly test into the user's record: the score joins
// the weekly history and the session's lessons are credited at the fixed
// cost model rate. Without an active session the standard weekly lesson
// count is credited instead.
func (t *Tracker) RecordTest(userID string, score float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.user(userID)
	lessons := t.cfg.LessonsPerWeek
	if r.activeSession != nil && len(r.activeSession.Lessons) > 0 {
		lessons = len(r.activeSession.Lessons)
	}

	r.weeklyScores = append(r.weeklyScores, score)
	r.lessonsDone += lessons
	r.timeSpent += lessons*t.cfg.LessonMinutes + t.cfg.TestMinutes
}

// Progress reports the user's accumulated progress in wire form. Users
// with no recorded activity get a zeroed first-week summary.
func (t *Tracker) Progress(userID string) *api.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.users[userID]
	if !ok {
		return &api.Progress{
			CurrentWeek:     1,
			WeeklyScores:    []float64{},
			Recommendations: []string{},
		}
	}

	scores := append([]float64(nil), r.weeklyScores...)
	return &api.Progress{
		LessonsCompleted: r.lessonsDone,
		AverageScore:     mean(scores),
		TimeSpent:        r.timeSpent,
		CurrentWeek:      len(scores) + 1,
		WeeklyScores:     ensureScores(scores),
		Recommendations:  Analyze(scores, r.lessonsDone, r.timeSpent),
	}
}

// Plan returns the user's stored plan, or nil.
func (t *Tracker) Plan(userID string) *api.Plan {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok := t.users[userID]; ok {
		return r.plan
	}
	return nil
}

// ActiveSession returns the user's active session, or nil.
func (t *Tracker) ActiveSession(userID string) *api.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok := t.users[userID]; ok {
		return r.activeSession
	}
	return nil
}

// mean returns the arithmetic mean of scores, or 0 for an empty slice.
func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// ensureScores keeps empty score lists serializing as [] rather than null.
func ensureScores(scores []float64) []float64 {
	if scores == nil {
		return []float64{}
	}
	return scores
}
