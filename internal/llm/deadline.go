package llm

import (
	"context"
	"time"
)

// deadlineProvider bounds each Generate call with one overall timeout.
// Placed outside the retry decorator, the limit covers all attempts.
type deadlineProvider struct {
	inner Provider
	limit time.Duration
}

// WithDeadline wraps a Provider so every call runs under limit. A zero
// limit returns p unchanged.
func WithDeadline(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &deadlineProvider{inner: p, limit: limit}
}

func (d *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, d.limit)
	defer cancel()
	return d.inner.Generate(ctx, req)
}

func (d *deadlineProvider) ModelID() string { return d.inner.ModelID() }
