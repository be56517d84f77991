// Package api defines the JSON wire types shared by the learnloop client
// and server. Field names follow the original backend contract: the plan
// creation request uses camelCase ("userRequest") while everything else is
// snake_case.
package api

// CreatePlanRequest is the body of POST /api/create-plan.
type CreatePlanRequest struct {
	UserRequest string `json:"userRequest"`
}

// Plan is a generated learning plan as it appears on the wire.
type Plan struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Timeline string   `json:"timeline"`
	Lessons  int      `json:"lessons"`
	Goals    []string `json:"goals"`
	Subject  string   `json:"subject,omitempty"`
	UserID   string   `json:"user_id"`
}

// CreatePlanResponse is the body returned by POST /api/create-plan.
type CreatePlanResponse struct {
	Success bool   `json:"success"`
	Plan    *Plan  `json:"plan"`
	Message string `json:"message,omitempty"`
}

// StartSessionRequest is the body of POST /api/start-session.
type StartSessionRequest struct {
	UserID string `json:"user_id"`
}

// Session is an active learning session as it appears on the wire.
type Session struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id,omitempty"`
	StartTime string   `json:"start_time,omitempty"`
	Status    string   `json:"status,omitempty"`
	Lessons   []string `json:"lessons"`
}

// StartSessionResponse is the body returned by POST /api/start-session.
type StartSessionResponse struct {
	Success bool     `json:"success"`
	Session *Session `json:"session"`
	Message string   `json:"message,omitempty"`
}

// TakeTestRequest is the body of POST /api/take-test.
type TakeTestRequest struct {
	UserID string `json:"user_id"`
}

// TakeTestResponse is the body returned by POST /api/take-test.
type TakeTestResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Message string  `json:"message,omitempty"`
}

// EndSessionRequest is the body of POST /api/end-session.
type EndSessionRequest struct {
	UserID string `json:"user_id"`
}

// EndSessionResponse is the body returned by POST /api/end-session.
type EndSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Progress is a user's accumulated progress as it appears on the wire.
// TimeSpent is in minutes.
type Progress struct {
	LessonsCompleted int       `json:"lessons_completed"`
	AverageScore     float64   `json:"average_score"`
	TimeSpent        int       `json:"time_spent"`
	CurrentWeek      int       `json:"current_week"`
	WeeklyScores     []float64 `json:"weekly_scores"`
	Recommendations  []string  `json:"recommendations"`
}

// ProgressResponse is the body returned by GET /api/progress/:user_id.
type ProgressResponse struct {
	Success  bool      `json:"success"`
	Progress *Progress `json:"progress"`
}

// ErrorResponse is the body returned on any 4xx/5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
