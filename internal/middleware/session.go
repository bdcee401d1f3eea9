// Package middleware holds the Connect interceptors shared by every RPC.
package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabcalc/internal/auth"
	"github.com/mmynk/tabcalc/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SessionIDKey is the context key for the authenticated tab session ID.
	SessionIDKey contextKey = "session_id"
	// ModeKey is the context key for the session's split mode.
	ModeKey contextKey = "mode"
)

// GetSessionID extracts the session ID from the context.
// Returns empty string if not found.
func GetSessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionIDKey).(string)
	return sessionID
}

// GetMode extracts the split mode from the context.
func GetMode(ctx context.Context) models.SplitMode {
	mode, _ := ctx.Value(ModeKey).(models.SplitMode)
	return mode
}

// WithSession returns a context carrying the given session identity.
func WithSession(ctx context.Context, sessionID string, mode models.SplitMode) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, sessionID)
	return context.WithValue(ctx, ModeKey, mode)
}

// RequireSession returns an interceptor that validates the bearer session
// token and puts the session identity on the context. Procedures listed in
// public skip the check.
func RequireSession(tokens *auth.TokenManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithSession(ctx, claims.SessionID, claims.Mode), req)
		}
	}
}
