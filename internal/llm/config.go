package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes an LLM provider. The zero value is
// not usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // friendly name or full ID, default "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL may point
// at any chat-completions-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // friendly name or full ID, default "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration. Model IDs
// are vendor-prefixed.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // default "google/gemini-2.0-flash-exp"
	BaseURL string // default "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays LEARNLOOP_* environment variables on the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay("LEARNLOOP_LLM_PROVIDER", &cfg.Provider)
	overlay("LEARNLOOP_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	overlay("LEARNLOOP_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	overlay("LEARNLOOP_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	overlay("LEARNLOOP_OPENAI_MODEL", &cfg.OpenAI.Model)
	overlay("LEARNLOOP_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	overlay("LEARNLOOP_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	overlay("LEARNLOOP_GEMINI_MODEL", &cfg.Gemini.Model)
	overlay("LEARNLOOP_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	overlay("LEARNLOOP_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

func overlay(env string, dst *string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' conventional API key variables,
// Gemini first, then OpenAI, Anthropic, and OpenRouter, and returns a
// Config for the first key found. The second return is false when no
// key is set.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
		key      func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		v := os.Getenv(p.env)
		if v == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.provider
		*p.key(&cfg) = v
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case "anthropic":
		key, envVar = c.Anthropic.APIKey, "LEARNLOOP_ANTHROPIC_API_KEY"
	case "openai":
		key, envVar = c.OpenAI.APIKey, "LEARNLOOP_OPENAI_API_KEY"
	case "gemini":
		key, envVar = c.Gemini.APIKey, "LEARNLOOP_GEMINI_API_KEY"
	case "openrouter":
		key, envVar = c.OpenRouter.APIKey, "LEARNLOOP_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}

	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
