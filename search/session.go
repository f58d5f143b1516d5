package search

import "context"

type sessionIDKey struct{}

// WithSessionID attaches the caller's session id to the context so
// executed searches can be attributed in the query log.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext returns the session id attached with
// WithSessionID, or "" if none is present.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey{}).(string)
	return sessionID
}
