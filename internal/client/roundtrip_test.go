package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/learnloop/learnloop/internal/generate"
	"github.com/learnloop/learnloop/internal/server"
	"github.com/learnloop/learnloop/internal/track"
)

// TestRoundTrip drives the real server through the client: create plan,
// start session, take test, end session, read progress.
func TestRoundTrip(t *testing.T) {
	srv := server.New(server.Options{
		Mode:      gin.TestMode,
		Generator: generate.New(nil, nil, generate.Config{Seed: 7}),
		Tracker:   track.New(track.DefaultConfig()),
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := New(ts.URL, 0)
	ctx := context.Background()

	plan, err := c.CreatePlan(ctx, "I want to learn Python for 3 months with weekly tests")
	if err != nil {
		t.Fatalf("CreatePlan() error = %v", err)
	}
	if plan.Title != "Python Programming Mastery" {
		t.Errorf("title = %q, want %q", plan.Title, "Python Programming Mastery")
	}
	if plan.UserID == "" {
		t.Fatal("user_id empty")
	}

	sess, err := c.StartSession(ctx, plan.UserID)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if len(sess.Lessons) != 3 {
		t.Errorf("lessons = %v, want 3 titles", sess.Lessons)
	}

	score, err := c.TakeTest(ctx, plan.UserID)
	if err != nil {
		t.Fatalf("TakeTest() error = %v", err)
	}
	if score < 0 || score > 100 {
		t.Errorf("score = %v, want within [0, 100]", score)
	}

	if err := c.EndSession(ctx, plan.UserID); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}

	progress, err := c.Progress(ctx, plan.UserID)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if progress.LessonsCompleted != 3 {
		t.Errorf("lessons_completed = %d, want 3", progress.LessonsCompleted)
	}
	if progress.TimeSpent != 165 {
		t.Errorf("time_spent = %d, want 165", progress.TimeSpent)
	}
	if progress.CurrentWeek != 2 {
		t.Errorf("current_week = %d, want 2", progress.CurrentWeek)
	}
	if len(progress.WeeklyScores) != 1 || progress.WeeklyScores[0] != score {
		t.Errorf("weekly_scores = %v, want [%v]", progress.WeeklyScores, score)
	}
}

// TestRoundTripRejectsBlankRequest confirms the server's validation comes
// back as a typed client error.
func TestRoundTripRejectsBlankRequest(t *testing.T) {
	srv := server.New(server.Options{
		Mode:      gin.TestMode,
		Generator: generate.New(nil, nil, generate.Config{}),
		Tracker:   track.New(track.DefaultConfig()),
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := New(ts.URL, 0)
	_, err := c.CreatePlan(context.Background(), "   ")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "User request is required" {
		t.Errorf("message = %q, want %q", apiErr.Message, "User request is required")
	}
}
