// Package generate produces learning plans, weekly lesson lists, and
// simulated test scores. Plan generation has two paths: an LLM path used
// when a provider is configured, and a deterministic keyword path that
// serves as both the no-provider mode and the fallback when the LLM call
// fails. Either way a request always yields a plan.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/learnloop/learnloop/internal/api"
	"github.com/learnloop/learnloop/internal/llm"
)

// Simulated weekly test scores: a base of 60 with a uniform wobble in
// [-15, 25], clamped to [0, 100].
const (
	scoreBase     = 60
	scoreWobbleLo = -15
	scoreWobbleHi = 25
)

// weekLessonPool holds the lesson titles handed out per week, in order.
// The default three-lesson week uses the first three.
var weekLessonPool = []string{
	"Introduction to Variables",
	"Control Structures",
	"Functions and Modules",
	"Data Structures in Practice",
	"Error Handling Basics",
	"Working with Files",
}

// Service generates plan content. A nil provider disables the LLM path.
type Service struct {
	provider llm.Provider
	log      *zap.Logger
	cfg      Config

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Service. provider may be nil; log may be nil for silent
// operation.
func New(provider llm.Provider, log *zap.Logger, cfg Config) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Service{
		provider: provider,
		log:      log,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(seed, seed<<1|1)),
	}
}

// PlanForRequest builds a learning plan for a free-text request. The user
// ID is a stable hash of the request so repeated identical requests map to
// the same user, mirroring how the backend keys its records.
func (s *Service) PlanForRequest(ctx context.Context, userRequest string) *api.Plan {
	userID := stableID("user", userRequest)

	if s.provider != nil {
		plan, err := s.generatePlan(ctx, userRequest)
		if err == nil {
			plan.ID = "plan_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
			plan.UserID = userID
			return plan
		}
		s.log.Warn("LLM plan generation failed, using keyword fallback",
			zap.Error(err))
	}

	return &api.Plan{
		ID:       stableID("plan", userRequest),
		Title:    planTitle(userRequest),
		Timeline: planTimeline(userRequest),
		Lessons:  planLessonCount(userRequest),
		Goals:    planGoals(userRequest),
		Subject:  planSubject(userRequest),
		UserID:   userID,
	}
}

// WeekLessons returns the lesson titles for one weekly session.
func (s *Service) WeekLessons() []string {
	n := s.cfg.LessonsPerWeek
	if n > len(weekLessonPool) {
		n = len(weekLessonPool)
	}
	return append([]string(nil), weekLessonPool[:n]...)
}

// TestScore simulates one weekly test result.
func (s *Service) TestScore() float64 {
	s.mu.Lock()
	wobble := s.rng.IntN(scoreWobbleHi-scoreWobbleLo+1) + scoreWobbleLo
	s.mu.Unlock()

	score := scoreBase + wobble
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return float64(score)
}

// SessionID returns the stable session ID for a user.
func (s *Service) SessionID(userID string) string {
	return stableID("session", userID)
}

// planOutput is the raw LLM response before validation.
type planOutput struct {
	Title    string   `json:"title"`
	Timeline string   `json:"timeline"`
	Lessons  int      `json:"lessons"`
	Goals    []string `json:"goals"`
	Subject  string   `json:"subject"`
}

func (s *Service) generatePlan(ctx context.Context, userRequest string) (*api.Plan, error) {
	ctx = llm.WithPurpose(ctx, "plan-gen")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPlanMessage(userRequest, s.cfg.LessonsPerWeek),
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if strings.TrimSpace(raw.Title) == "" {
		return nil, errors.New("generated plan has no title")
	}
	if raw.Lessons < 1 {
		return nil, fmt.Errorf("generated plan has invalid lesson count %d", raw.Lessons)
	}

	return &api.Plan{
		Title:    raw.Title,
		Timeline: raw.Timeline,
		Lessons:  raw.Lessons,
		Goals:    raw.Goals,
		Subject:  raw.Subject,
	}, nil
}

// stableID builds IDs of the form prefix_NNNN from a hash of the seed
// string, so the same input always maps to the same ID.
func stableID(prefix, seed string) string {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return fmt.Sprintf("%s_%d", prefix, h.Sum32()%10000)
}
