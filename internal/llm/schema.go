package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON document shape a Request demands. It doubles as the
// provider-side structured-output instruction (tool schema for Anthropic,
// response format for OpenAI, response schema for Gemini) and as the
// local validator for what comes back.
type Schema struct {
	// Name identifies the schema to the provider. Kebab-case, e.g.
	// "learning-plan".
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the JSON Schema as a map literal.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Validate checks raw against the schema. Malformed JSON and schema
// violations both come back as *ErrInvalidResponse; a Definition that
// itself fails to compile is a plain error.
func (s *Schema) Validate(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not valid JSON: %w", err)}
	}

	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

// compile builds the validator on first use and caches it on the Schema.
// Concurrent validations share the one compiled result.
func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// The compiler wants a decoded JSON value, not a Go map with
		// typed values, so round-trip the definition through encoding/json.
		buf, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = fmt.Errorf("marshal definition: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(buf, &doc); err != nil {
			s.err = fmt.Errorf("parse definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.Name)
		if err := c.AddResource(url, doc); err != nil {
			s.err = err
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}
