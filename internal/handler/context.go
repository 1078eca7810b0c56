package handlers

import (
	"context"

	"blogCPT/internal/models"
)

type contextKey string

const (
	identityKey  contextKey = "identity"
	authErrorKey contextKey = "auth_error"
	requestIDKey contextKey = "request_id"
)

func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated caller or nil.
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey).(*models.Identity)
	return identity
}

// WithAuthError records why a presented token was rejected, so protected
// routes can report it.
func WithAuthError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authErrorKey, err)
}

func AuthErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(authErrorKey).(error)
	return err
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
