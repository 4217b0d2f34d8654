package log

import "context"

type runIDKey struct{}

// WithRunID attaches a run identifier that is emitted as the run_id field.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID returns the run identifier stored in ctx, if any.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
