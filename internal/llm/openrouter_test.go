package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenRouterVendorPrefixedModels(t *testing.T) {
	for _, model := range []string{
		"google/gemini-2.0-flash-exp",
		"anthropic/claude-3-haiku",
		"meta-llama/llama-3-8b",
	} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider(%q): %v", model, err)
		}
		if got := p.ModelID(); got != model {
			t.Errorf("ModelID() = %q, want %q", got, model)
		}
	}
}

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("NewOpenRouterProvider with empty key succeeded, want error")
	}
}

func TestOpenRouterDefaultBaseURL(t *testing.T) {
	if openRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("openRouterBaseURL = %q", openRouterBaseURL)
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.OpenAIProvider == nil {
		t.Fatal("OpenRouter provider did not wrap an OpenAI provider")
	}
}

// OpenRouter speaks the chat completions dialect, so a request through
// the wrapper should land on /chat/completions of the configured base.
func TestOpenRouterGenerate(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletion(`{"ok":true}`, "stop"))
	}))
	defer srv.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}

	resp, err := p.Generate(t.Context(), Request{Prompt: "plan a week of lessons"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Model != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q", resp.Model)
	}
}
