package upstream

import "context"

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	retriedKey
)

// WithSessionID tags a request context with the console session whose
// credentials the transport should use. Requests without a session ID go
// out unauthenticated.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns the tagged session ID, or "".
func SessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey).(string)
	return sid
}

// markRetried flags a request as having consumed its single refresh+retry.
func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey, true)
}

func isRetried(ctx context.Context) bool {
	retried, _ := ctx.Value(retriedKey).(bool)
	return retried
}
