// Package server exposes the learning planner over HTTP. The endpoint
// contract (paths, status codes, message strings) is fixed; clients
// depend on the exact wording of both error and success messages.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnloop/learnloop/internal/generate"
	"github.com/learnloop/learnloop/internal/monitoring"
	"github.com/learnloop/learnloop/internal/track"
)

// Options configures a Server. Generator and Tracker are required; a nil
// Log silences the server.
type Options struct {
	Addr      string
	Mode      string
	Generator *generate.Service
	Tracker   *track.Tracker
	Log       *zap.Logger
}

// Server holds dependencies for the HTTP handlers.
type Server struct {
	addr    string
	engine  *gin.Engine
	gen     *generate.Service
	tracker *track.Tracker
	log     *zap.Logger
}

// New creates a Server with all routes configured.
func New(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	monitoring.Init()

	s := &Server{
		addr:    opts.Addr,
		engine:  gin.New(),
		gen:     opts.Generator,
		tracker: opts.Tracker,
		log:     opts.Log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(monitoring.MetricsMiddleware())

	api := s.engine.Group("/api")
	api.POST("/create-plan", s.handleCreatePlan)
	api.POST("/start-session", s.handleStartSession)
	api.POST("/take-test", s.handleTakeTest)
	api.POST("/end-session", s.handleEndSession)
	api.GET("/progress/:user_id", s.handleProgress)

	s.engine.GET("/metrics", monitoring.PrometheusHandler())
	s.engine.GET("/healthz", s.handleHealthz)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on the configured address until SIGINT or SIGTERM, then
// shuts down gracefully with a 5 second drain window.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	case sig := <-quit:
		s.log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("server exiting")
	return nil
}

// Serve runs the server on an existing listener until ctx is canceled.
// Used to embed a backend inside the TUI process on an ephemeral port.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.engine}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(l)
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
