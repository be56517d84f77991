package cmd

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnloop/learnloop/internal/app"
	"github.com/learnloop/learnloop/internal/client"
	"github.com/learnloop/learnloop/internal/config"
	"github.com/learnloop/learnloop/internal/generate"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/logging"
	"github.com/learnloop/learnloop/internal/planner"
	"github.com/learnloop/learnloop/internal/server"
	"github.com/learnloop/learnloop/internal/track"
)

// runApp wires a backend, builds the session controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Console core stays off: log lines would tear the alternate screen.
	log := logging.New(cfg.Log.Dir, cfg.LogLevel(), false)
	defer log.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	baseURL, _ := cmd.Flags().GetString("server")
	if baseURL == "" {
		baseURL, err = startEmbeddedServer(ctx, buildGenerator(ctx, cfg, log), cfg, log)
		if err != nil {
			return fmt.Errorf("start embedded server: %w", err)
		}
	}

	c := client.New(baseURL, cfg.Client.Timeout())
	ctrl := planner.New(c, planner.Config{
		LessonMinutes: cfg.Plan.LessonMinutes,
		TestMinutes:   cfg.Plan.TestMinutes,
	})

	return app.Run(app.Options{
		Controller: ctrl,
		Progress:   c,
	})
}

// startEmbeddedServer serves the backend on an ephemeral localhost port for
// the lifetime of ctx and returns its base URL.
func startEmbeddedServer(ctx context.Context, gen *generate.Service, cfg *config.Config, log *zap.Logger) (string, error) {
	srv := server.New(server.Options{
		// Embedded runs force release mode; gin debug output would tear
		// the alternate screen.
		Mode:      "release",
		Generator: gen,
		Tracker:   track.New(trackConfig(cfg)),
		Log:       log,
	})

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}

	go func() {
		if err := srv.Serve(ctx, l); err != nil {
			log.Error("embedded server stopped", zap.Error(err))
		}
	}()

	return "http://" + l.Addr().String(), nil
}

// buildGenerator creates the generation service. The LLM path is optional;
// without a configured provider the deterministic path serves everything.
func buildGenerator(ctx context.Context, cfg *config.Config, log *zap.Logger) *generate.Service {
	provider, err := buildProvider(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Plans will use deterministic generation.")
		provider = nil
	}

	return generate.New(provider, log, generate.Config{
		LessonsPerWeek: cfg.Plan.LessonsPerWeek,
		MaxTokens:      cfg.LLM.MaxTokens,
		Temperature:    cfg.LLM.Temperature,
	})
}

// buildProvider creates the LLM provider, preferring config file settings
// and falling back to environment discovery.
func buildProvider(ctx context.Context, cfg *config.Config, log *zap.Logger) (llm.Provider, error) {
	lcfg := providerConfig(cfg)
	if err := lcfg.Validate(); err == nil {
		return llm.NewProvider(ctx, lcfg, log)
	}
	return llm.NewProviderFromEnv(ctx, log)
}

// providerConfig overlays the config file's llm section onto the
// environment-derived provider config.
func providerConfig(cfg *config.Config) llm.Config {
	lcfg := llm.ConfigFromEnv()
	if cfg.LLM.Provider != "" {
		lcfg.Provider = cfg.LLM.Provider
	}
	if cfg.LLM.Model != "" {
		switch lcfg.Provider {
		case "anthropic":
			lcfg.Anthropic.Model = cfg.LLM.Model
		case "openai":
			lcfg.OpenAI.Model = cfg.LLM.Model
		case "gemini":
			lcfg.Gemini.Model = cfg.LLM.Model
		case "openrouter":
			lcfg.OpenRouter.Model = cfg.LLM.Model
		}
	}
	return lcfg
}

func trackConfig(cfg *config.Config) track.Config {
	return track.Config{
		LessonMinutes:  cfg.Plan.LessonMinutes,
		TestMinutes:    cfg.Plan.TestMinutes,
		LessonsPerWeek: cfg.Plan.LessonsPerWeek,
	}
}
