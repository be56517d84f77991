package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnloop/learnloop/internal/api"
	"github.com/learnloop/learnloop/internal/generate"
	"github.com/learnloop/learnloop/internal/track"
)

func newTestServer() *Server {
	return New(Options{
		Mode:      gin.TestMode,
		Generator: generate.New(nil, nil, generate.Config{Seed: 42}),
		Tracker:   track.New(track.DefaultConfig()),
	})
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestCreatePlan(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/api/create-plan", api.CreatePlanRequest{
		UserRequest: "I want to learn Python for 3 months with weekly tests",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.CreatePlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Message != "Learning plan created successfully!" {
		t.Errorf("message = %q, want %q", resp.Message, "Learning plan created successfully!")
	}
	if resp.Plan == nil {
		t.Fatal("plan = nil, want a plan")
	}
	if resp.Plan.Title != "Python Programming Mastery" {
		t.Errorf("title = %q, want %q", resp.Plan.Title, "Python Programming Mastery")
	}
	if resp.Plan.Timeline != "3 months" {
		t.Errorf("timeline = %q, want %q", resp.Plan.Timeline, "3 months")
	}
	if !strings.HasPrefix(resp.Plan.ID, "plan_") {
		t.Errorf("plan id = %q, want plan_ prefix", resp.Plan.ID)
	}
	if !strings.HasPrefix(resp.Plan.UserID, "user_") {
		t.Errorf("user id = %q, want user_ prefix", resp.Plan.UserID)
	}
}

func TestCreatePlanRequiresRequest(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name string
		body any
	}{
		{"empty request", api.CreatePlanRequest{UserRequest: ""}},
		{"whitespace request", api.CreatePlanRequest{UserRequest: "   "}},
		{"wrong shape", map[string]string{"request": "learn Go"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, s, "/api/create-plan", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp api.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if resp.Error != "User request is required" {
				t.Errorf("error = %q, want %q", resp.Error, "User request is required")
			}
		})
	}
}

func TestStartSession(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/api/start-session", api.StartSessionRequest{UserID: "user_1234"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.StartSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Message != "Learning session started!" {
		t.Errorf("message = %q, want %q", resp.Message, "Learning session started!")
	}
	if resp.Session == nil {
		t.Fatal("session = nil, want a session")
	}
	if resp.Session.Status != "active" {
		t.Errorf("status = %q, want %q", resp.Session.Status, "active")
	}
	if !strings.HasPrefix(resp.Session.ID, "session_") {
		t.Errorf("session id = %q, want session_ prefix", resp.Session.ID)
	}
	if len(resp.Session.Lessons) != 3 {
		t.Errorf("lessons = %v, want 3 titles", resp.Session.Lessons)
	}
	if _, err := time.Parse(time.RFC3339, resp.Session.StartTime); err != nil {
		t.Errorf("start_time = %q, want RFC3339: %v", resp.Session.StartTime, err)
	}
}

func TestStartSessionRequiresUserID(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/api/start-session", api.StartSessionRequest{UserID: ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error != "User ID is required" {
		t.Errorf("error = %q, want %q", resp.Error, "User ID is required")
	}
}

func TestTakeTest(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/api/take-test", api.TakeTestRequest{UserID: "user_1234"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.TakeTestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Score < 0 || resp.Score > 100 {
		t.Errorf("score = %v, want within [0, 100]", resp.Score)
	}
	want := fmt.Sprintf("Test completed! Score: %v%%", resp.Score)
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestEndSession(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s, "/api/end-session", api.EndSessionRequest{UserID: "user_1234"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.EndSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Message != "Learning session ended successfully!" {
		t.Errorf("message = %q, want %q", resp.Message, "Learning session ended successfully!")
	}
}

func TestProgressReflectsActivity(t *testing.T) {
	s := newTestServer()

	create := postJSON(t, s, "/api/create-plan", api.CreatePlanRequest{
		UserRequest: "I want to learn Python for 3 months",
	})
	var planResp api.CreatePlanResponse
	if err := json.NewDecoder(create.Body).Decode(&planResp); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	userID := planResp.Plan.UserID

	postJSON(t, s, "/api/start-session", api.StartSessionRequest{UserID: userID})
	postJSON(t, s, "/api/take-test", api.TakeTestRequest{UserID: userID})
	postJSON(t, s, "/api/end-session", api.EndSessionRequest{UserID: userID})

	rec := getJSON(t, s, "/api/progress/"+userID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.ProgressResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Progress == nil {
		t.Fatal("progress = nil")
	}
	if resp.Progress.LessonsCompleted != 3 {
		t.Errorf("lessons_completed = %d, want 3", resp.Progress.LessonsCompleted)
	}
	// 3 lessons x 45 min + 30 min test.
	if resp.Progress.TimeSpent != 165 {
		t.Errorf("time_spent = %d, want 165", resp.Progress.TimeSpent)
	}
	if resp.Progress.CurrentWeek != 2 {
		t.Errorf("current_week = %d, want 2", resp.Progress.CurrentWeek)
	}
	if len(resp.Progress.WeeklyScores) != 1 {
		t.Errorf("weekly_scores = %v, want one entry", resp.Progress.WeeklyScores)
	}
	if len(resp.Progress.Recommendations) == 0 {
		t.Error("recommendations empty, want at least the band pair")
	}
}

func TestProgressUnknownUser(t *testing.T) {
	s := newTestServer()

	rec := getJSON(t, s, "/api/progress/user_404")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp api.ProgressResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Progress.CurrentWeek != 1 {
		t.Errorf("current_week = %d, want 1", resp.Progress.CurrentWeek)
	}
	if resp.Progress.LessonsCompleted != 0 {
		t.Errorf("lessons_completed = %d, want 0", resp.Progress.LessonsCompleted)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer()

	rec := getJSON(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsExposition(t *testing.T) {
	s := newTestServer()

	// Generate some traffic first so the request counter has children.
	postJSON(t, s, "/api/create-plan", api.CreatePlanRequest{UserRequest: "learn Go"})

	rec := getJSON(t, s, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "http_requests_total") {
		t.Error("metrics exposition missing http_requests_total")
	}
}
