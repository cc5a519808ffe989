package useragent

import "context"

type contextKey struct{}

// SetToContext stores ua in ctx.
func SetToContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, contextKey{}, ua)
}

// GetFromContext returns the UserAgent stored by SetToContext.
func GetFromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(contextKey{}).(UserAgent)
	return ua, ok
}
