// Package llm abstracts the hosted model APIs that plan generation runs
// on. Every call is single-turn: one system prompt, one user prompt, one
// JSON document back, validated against the request's schema. Providers
// compose with retry, logging, and deadline decorators; NewProvider
// assembles the full chain from a Config.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one hosted model API.
type Provider interface {
	// Generate runs a single structured-output call. When req.Schema is
	// set the returned Content is JSON validated against it; a response
	// that does not conform fails with *ErrInvalidResponse rather than
	// being passed through.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the resolved model identifier requests are sent to.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and output rules.
	System string

	// Prompt is the user message. There is no conversation history.
	Prompt string

	// Schema, when set, switches the provider to its native structured
	// output mode and gates the response through validation.
	Schema *Schema

	// MaxTokens caps the response length. A response cut off at the cap
	// fails with *ErrTruncated.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Response is the model's output for one Request.
type Response struct {
	// Content is the generated document. With a Schema on the request
	// this is the validated JSON object; without one it is the raw text.
	Content json.RawMessage

	// Model is the identifier the API reports for the model that served
	// the call. May be more specific than the requested ID.
	Model string

	// Usage is the token consumption billed for the call.
	Usage Usage
}

// Usage counts the tokens one call consumed.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is the combined input and output token count.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
