package llm

import "context"

type ctxKey int

const ctxKeyPurpose ctxKey = iota

// WithPurpose tags the context with a label ("exercise-generation",
// "pronunciation") that the logging middleware records per request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, ctxKeyPurpose, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(ctxKeyPurpose).(string); ok {
		return p
	}
	return "unknown"
}
