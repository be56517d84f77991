package generate

// Config controls plan and lesson generation.
type Config struct {
	// LessonsPerWeek is how many lesson titles a weekly session carries.
	LessonsPerWeek int

	// MaxTokens is the token budget for LLM plan generation.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Seed seeds the simulated test scores. Zero selects a random seed;
	// a fixed value makes score sequences reproducible.
	Seed uint64
}

// DefaultConfig returns the standard generation defaults.
func DefaultConfig() Config {
	return Config{
		LessonsPerWeek: 3,
		MaxTokens:      512,
		Temperature:    0.7,
	}
}

func (c Config) withDefaults() Config {
	if c.LessonsPerWeek == 0 {
		c.LessonsPerWeek = 3
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 512
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	return c
}
