package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// loggingProvider logs every call: purpose, resolved model, token usage,
// latency, and an estimated cost when the model's pricing is known.
type loggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger
// disables logging without disturbing the decorator chain.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", purpose),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}

	if resp != nil {
		fields = append(fields,
			zap.String("model", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields,
				zap.Float64("est_cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	} else {
		fields = append(fields, zap.String("model", l.inner.ModelID()))
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.log.Warn("LLM request failed", fields...)
		return resp, err
	}

	l.log.Info("LLM request", fields...)
	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
