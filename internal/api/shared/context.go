package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/coursedeck/coursedeck-api/internal/domain"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// CurrentUserContextKey is the context key for the authenticated user
	// resolved by the credential-verification middleware.
	CurrentUserContextKey ContextKey = "currentUser"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// WithCurrentUser returns a context carrying the authenticated user.
// The value is request-scoped and discarded when the request ends.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, CurrentUserContextKey, user)
}

// CurrentUser retrieves the authenticated user from the context.
// Returns the user and a boolean indicating whether one was attached.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CurrentUserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string (16 bytes).
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable; log and carry
		// on without a trace ID rather than failing the request.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
