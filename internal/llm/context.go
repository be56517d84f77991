package llm

import "context"

type purposeKey struct{}

// WithPurpose labels ctx with what the call is for, e.g. "plan-gen". The
// logging decorator picks the label up for its event lines.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label, or "unknown" for an unlabeled ctx.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
