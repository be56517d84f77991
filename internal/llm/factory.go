package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped in the full
// decorator chain: caller → deadline → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, log)
	retried := WithRetry(logged, cfg.Retry)
	return WithDeadline(retried, cfg.Timeout), nil
}

// NewProviderFromEnv builds a provider from LEARNLOOP_* environment
// variables when LEARNLOOP_LLM_PROVIDER is set, otherwise by probing the
// standard API key variables via DiscoverConfig. Returns an error when no
// provider is configured.
func NewProviderFromEnv(ctx context.Context, log *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, log)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, errors.New("no LLM provider configured: set LEARNLOOP_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
	}
	return NewProvider(ctx, discovered, log)
}
