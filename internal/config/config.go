// Package config loads learnloop settings from config.yaml and
// LEARNLOOP_* environment variables, with sensible defaults for both.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the learnloop binary. One struct
// serves every subcommand; each consumer reads only its own section.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Client ClientConfig `mapstructure:"client"`
	Plan   PlanConfig   `mapstructure:"plan"`
	Log    LogConfig    `mapstructure:"log"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig configures the backend API server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

// ClientConfig configures the HTTP client side.
type ClientConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the client timeout as a duration.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PlanConfig carries the session cost model.
type PlanConfig struct {
	LessonMinutes  int `mapstructure:"lesson_minutes"`
	TestMinutes    int `mapstructure:"test_minutes"`
	LessonsPerWeek int `mapstructure:"lessons_per_week"`
}

// LogConfig configures file logging. Level falls back to the server mode
// when empty: debug mode logs at debug, everything else at info.
type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// LLMConfig carries optional LLM generation settings. Provider API keys
// are never read from the config file; they come from the environment.
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Load reads config.yaml from path (and the working directory) plus any
// LEARNLOOP_* environment overrides. A missing config file is fine; the
// defaults describe a complete local setup.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("LEARNLOOP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("server.addr", "LEARNLOOP_SERVER_ADDR")
	v.BindEnv("server.mode", "LEARNLOOP_SERVER_MODE")
	v.BindEnv("client.base_url", "LEARNLOOP_BASE_URL")
	v.BindEnv("client.timeout_seconds", "LEARNLOOP_CLIENT_TIMEOUT")
	v.BindEnv("log.dir", "LEARNLOOP_LOG_DIR")
	v.BindEnv("log.level", "LEARNLOOP_LOG_LEVEL")
	v.BindEnv("llm.provider", "LEARNLOOP_LLM_PROVIDER")
	v.BindEnv("llm.model", "LEARNLOOP_LLM_MODEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.mode", "release")

	v.SetDefault("client.base_url", "http://127.0.0.1:5000")
	v.SetDefault("client.timeout_seconds", 10)

	v.SetDefault("plan.lesson_minutes", 45)
	v.SetDefault("plan.test_minutes", 30)
	v.SetDefault("plan.lessons_per_week", 3)

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "")

	v.SetDefault("llm.max_tokens", 512)
	v.SetDefault("llm.temperature", 0.7)
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q: must be debug, release, or test", c.Server.Mode)
	}
	if c.Plan.LessonMinutes <= 0 {
		return fmt.Errorf("plan.lesson_minutes must be positive, got %d", c.Plan.LessonMinutes)
	}
	if c.Plan.TestMinutes <= 0 {
		return fmt.Errorf("plan.test_minutes must be positive, got %d", c.Plan.TestMinutes)
	}
	if c.Plan.LessonsPerWeek <= 0 {
		return fmt.Errorf("plan.lessons_per_week must be positive, got %d", c.Plan.LessonsPerWeek)
	}
	if c.Client.TimeoutSeconds <= 0 {
		return fmt.Errorf("client.timeout_seconds must be positive, got %d", c.Client.TimeoutSeconds)
	}
	return nil
}

// LogLevel resolves the effective log level: the explicit setting when
// present, otherwise derived from the server mode.
func (c *Config) LogLevel() string {
	if c.Log.Level != "" {
		return c.Log.Level
	}
	if c.Server.Mode == "debug" {
		return "debug"
	}
	return "info"
}
