package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestUsageTotal(t *testing.T) {
	u := Usage{InputTokens: 120, OutputTokens: 45}
	if got := u.Total(); got != 165 {
		t.Fatalf("Total() = %d, want 165", got)
	}
}

func TestMockReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"title":"Python Plan"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Content: json.RawMessage(`{"title":"Guitar Plan"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Prompt: "python"})
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if string(first.Content) != `{"title":"Python Plan"}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.Total() != 15 {
		t.Errorf("first usage total = %d, want 15", first.Usage.Total())
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "guitar"})
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if string(second.Content) != `{"title":"Guitar Plan"}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockEmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *ErrProviderUnavailable", err)
	}
}

func TestMockRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{System: "You are a learning coach.", Prompt: "I want to learn Python"}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Prompt != "I want to learn Python" {
		t.Errorf("recorded prompt = %q", mock.Calls[0].Prompt)
	}
	if mock.Calls[0].System != "You are a learning coach." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T, want *ErrRateLimit", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("PurposeFrom(fresh ctx) = %q, want %q", p, "unknown")
	}
	ctx = WithPurpose(ctx, "plan-gen")
	if p := PurposeFrom(ctx); p != "plan-gen" {
		t.Fatalf("PurposeFrom = %q, want %q", p, "plan-gen")
	}
}

// ctxProbe captures the context each call runs under.
type ctxProbe struct {
	lastCtx context.Context
}

func (c *ctxProbe) Generate(ctx context.Context, _ Request) (*Response, error) {
	c.lastCtx = ctx
	return &Response{Content: json.RawMessage(`{}`)}, nil
}

func (c *ctxProbe) ModelID() string { return "probe" }

func TestWithDeadline(t *testing.T) {
	probe := &ctxProbe{}

	p := WithDeadline(probe, 5*time.Second)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	deadline, ok := probe.lastCtx.Deadline()
	if !ok {
		t.Fatal("inner call has no deadline")
	}
	if remaining := time.Until(deadline); remaining > 5*time.Second {
		t.Errorf("deadline too far out: %s", remaining)
	}
	if p.ModelID() != "probe" {
		t.Errorf("ModelID() = %q, want delegation", p.ModelID())
	}

	// A zero limit returns the provider unwrapped.
	if got := WithDeadline(probe, 0); got != Provider(probe) {
		t.Error("WithDeadline(0) should return the provider unchanged")
	}
}

func TestWithLoggingDelegates(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"Plan"}`),
		Usage:   Usage{InputTokens: 8, OutputTokens: 4},
	})
	p := WithLogging(mock, nil)

	resp, err := p.Generate(WithPurpose(context.Background(), "plan-gen"), Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"title":"Plan"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q, want delegation", p.ModelID())
	}
}
