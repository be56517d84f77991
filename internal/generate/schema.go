package generate

import "github.com/learnloop/learnloop/internal/llm"

// PlanSchema defines the JSON schema for LLM plan generation responses.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A personalized learning plan for one free-text request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short plan title naming the subject, e.g. \"Python Programming Mastery\"",
			},
			"timeline": map[string]any{
				"type":        "string",
				"description": "Human timeline label such as \"3 months\", \"6 weeks\", or \"1 year\"",
			},
			"lessons": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     60,
				"description": "Total lesson count across the whole timeline",
			},
			"goals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    2,
				"maxItems":    5,
				"description": "Short imperative learning goals",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "One or two word subject label, e.g. \"Python\"",
			},
		},
		"required":             []any{"title", "timeline", "lessons", "goals", "subject"},
		"additionalProperties": false,
	},
}
