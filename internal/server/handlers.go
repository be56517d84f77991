package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnloop/learnloop/internal/api"
	"github.com/learnloop/learnloop/internal/monitoring"
)

func (s *Server) handleCreatePlan(c *gin.Context) {
	var req api.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserRequest) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User request is required"})
		return
	}

	plan := s.gen.PlanForRequest(c.Request.Context(), req.UserRequest)
	s.tracker.RecordPlan(plan.UserID, plan)
	monitoring.OperationCounter.WithLabelValues("create_plan").Inc()

	s.log.Info("plan created",
		zap.String("user_id", plan.UserID),
		zap.String("plan_id", plan.ID),
		zap.String("title", plan.Title))

	c.JSON(http.StatusOK, api.CreatePlanResponse{
		Success: true,
		Plan:    plan,
		Message: "Learning plan created successfully!",
	})
}

func (s *Server) handleStartSession(c *gin.Context) {
	var req api.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User ID is required"})
		return
	}

	sess := &api.Session{
		ID:        s.gen.SessionID(req.UserID),
		UserID:    req.UserID,
		StartTime: time.Now().UTC().Format(time.RFC3339),
		Status:    "active",
		Lessons:   s.gen.WeekLessons(),
	}
	s.tracker.StartSession(req.UserID, sess)
	monitoring.OperationCounter.WithLabelValues("start_session").Inc()

	s.log.Info("session started",
		zap.String("user_id", req.UserID),
		zap.String("session_id", sess.ID))

	c.JSON(http.StatusOK, api.StartSessionResponse{
		Success: true,
		Session: sess,
		Message: "Learning session started!",
	})
}

func (s *Server) handleTakeTest(c *gin.Context) {
	var req api.TakeTestRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User ID is required"})
		return
	}

	score := s.gen.TestScore()
	s.tracker.RecordTest(req.UserID, score)
	monitoring.OperationCounter.WithLabelValues("take_test").Inc()
	monitoring.TestScores.Observe(score)

	s.log.Info("test taken",
		zap.String("user_id", req.UserID),
		zap.Float64("score", score))

	c.JSON(http.StatusOK, api.TakeTestResponse{
		Success: true,
		Score:   score,
		Message: fmt.Sprintf("Test completed! Score: %v%%", score),
	})
}

func (s *Server) handleEndSession(c *gin.Context) {
	var req api.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User ID is required"})
		return
	}

	s.tracker.EndSession(req.UserID)
	monitoring.OperationCounter.WithLabelValues("end_session").Inc()

	s.log.Info("session ended", zap.String("user_id", req.UserID))

	c.JSON(http.StatusOK, api.EndSessionResponse{
		Success: true,
		Message: "Learning session ended successfully!",
	})
}

func (s *Server) handleProgress(c *gin.Context) {
	userID := c.Param("user_id")
	progress := s.tracker.Progress(userID)

	c.JSON(http.StatusOK, api.ProgressResponse{
		Success:  true,
		Progress: progress,
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
