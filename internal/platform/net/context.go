// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keySessionID ctxKey = "session_id"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, sessionID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if sessionID != "" {
		ctx = context.WithValue(ctx, keySessionID, sessionID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// SessionID returns the browse session id on the context if present
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(keySessionID).(string); ok {
		return v
	}
	return ""
}
