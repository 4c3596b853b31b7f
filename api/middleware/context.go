package middleware

import "context"

type contextKey string

const (
	ctxCallerRole    contextKey = "caller_role"
	ctxCallerSubject contextKey = "caller_subject"
)

// CallerRoleFromContext returns the verified token role, or "" when auth is disabled.
func CallerRoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCallerRole).(string); ok {
		return v
	}
	return ""
}

func CallerSubjectFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCallerSubject).(string); ok {
		return v
	}
	return ""
}

func withCaller(ctx context.Context, role, subject string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxCallerRole, role)
	return context.WithValue(ctx, ctxCallerSubject, subject)
}
