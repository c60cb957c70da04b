package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDCtxKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID resolved by the
// auth middleware. The identity always travels on the request context; it is
// never read from client-supplied headers or body fields.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithUserID returns a context carrying the resolved user identity.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}
