package llm

import "context"

type purposeKey struct{}

// WithPurpose tags ctx with what a request is for, e.g. "coach". The tag
// ends up in the request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag of ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// DefaultPurpose tags ctx with purpose unless it already carries a tag.
func DefaultPurpose(ctx context.Context, purpose string) context.Context {
	if _, ok := ctx.Value(purposeKey{}).(string); ok {
		return ctx
	}
	return WithPurpose(ctx, purpose)
}
