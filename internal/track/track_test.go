package track

import (
	"reflect"
	"testing"

	"github.com/learnloop/learnloop/internal/api"
)

func TestProgressUnknownUser(t *testing.T) {
	tr := New(DefaultConfig())

	got := tr.Progress("user_404")
	if got.LessonsCompleted != 0 {
		t.Errorf("LessonsCompleted = %d, want 0", got.LessonsCompleted)
	}
	if got.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", got.AverageScore)
	}
	if got.CurrentWeek != 1 {
		t.Errorf("CurrentWeek = %d, want 1", got.CurrentWeek)
	}
	if got.WeeklyScores == nil || len(got.WeeklyScores) != 0 {
		t.Errorf("WeeklyScores = %v, want empty non-nil slice", got.WeeklyScores)
	}
}

func TestRecordTestAccumulates(t *testing.T) {
	tr := New(Config{LessonMinutes: 45, TestMinutes: 30, LessonsPerWeek: 3})
	tr.StartSession("user_1", &api.Session{
		ID:      "session_1",
		Lessons: []string{"Introduction to Variables", "Control Structures", "Functions and Modules"},
	})

	tr.RecordTest("user_1", 80)
	tr.RecordTest("user_1", 90)

	got := tr.Progress("user_1")
	if got.LessonsCompleted != 6 {
		t.Errorf("LessonsCompleted = %d, want 6", got.LessonsCompleted)
	}
	// Two tests at 3 lessons x 45 min + 30 min each.
	if got.TimeSpent != 330 {
		t.Errorf("TimeSpent = %d, want 330", got.TimeSpent)
	}
	if got.AverageScore != 85 {
		t.Errorf("AverageScore = %v, want 85", got.AverageScore)
	}
	if got.CurrentWeek != 3 {
		t.Errorf("CurrentWeek = %d, want 3", got.CurrentWeek)
	}
	if want := []float64{80, 90}; !reflect.DeepEqual(got.WeeklyScores, want) {
		t.Errorf("WeeklyScores = %v, want %v", got.WeeklyScores, want)
	}
	if len(got.Recommendations) == 0 {
		t.Error("Recommendations empty, want at least the band pair")
	}
}

func TestRecordTestWithoutSession(t *testing.T) {
	tr := New(Config{LessonMinutes: 45, TestMinutes: 30, LessonsPerWeek: 3})

	tr.RecordTest("user_1", 75)

	got := tr.Progress("user_1")
	if got.LessonsCompleted != 3 {
		t.Errorf("LessonsCompleted = %d, want the default weekly 3", got.LessonsCompleted)
	}
	if got.TimeSpent != 165 {
		t.Errorf("TimeSpent = %d, want 165", got.TimeSpent)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	tr := New(DefaultConfig())

	if tr.Plan("user_1") != nil {
		t.Fatal("Plan() before RecordPlan, want nil")
	}

	plan := &api.Plan{ID: "plan_1", Title: "Python Programming Mastery", UserID: "user_1"}
	tr.RecordPlan("user_1", plan)

	got := tr.Plan("user_1")
	if got == nil || got.ID != "plan_1" {
		t.Errorf("Plan() = %+v, want plan_1", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	tr := New(DefaultConfig())

	if tr.ActiveSession("user_1") != nil {
		t.Fatal("ActiveSession() before start, want nil")
	}

	tr.StartSession("user_1", &api.Session{ID: "session_1"})
	if got := tr.ActiveSession("user_1"); got == nil || got.ID != "session_1" {
		t.Errorf("ActiveSession() = %+v, want session_1", got)
	}

	tr.EndSession("user_1")
	if tr.ActiveSession("user_1") != nil {
		t.Error("ActiveSession() after end, want nil")
	}

	// Ending an unknown user's session is a no-op.
	tr.EndSession("user_404")
}

func TestProgressKeptAcrossPlans(t *testing.T) {
	tr := New(DefaultConfig())

	tr.RecordTest("user_1", 70)
	tr.RecordPlan("user_1", &api.Plan{ID: "plan_2", UserID: "user_1"})

	got := tr.Progress("user_1")
	if len(got.WeeklyScores) != 1 {
		t.Errorf("WeeklyScores after new plan = %v, want score kept", got.WeeklyScores)
	}
}
