package store

import "context"

type (
	sessionKey struct{}
	reqIDKey   struct{}
)

// WithSession attaches a browse session id to the context
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionID retrieves a browse session id from context if present
func SessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
