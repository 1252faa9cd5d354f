package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userCtxKey is the key used to store the authenticated user in the request context.
const userCtxKey = contextKey("user")

// AuthenticatedUser is the identity carried by a validated token.
type AuthenticatedUser struct {
	ID       int64
	Username string
	Role     string
}

// GetUserFromCtx retrieves the authenticated user from a standard context.
func GetUserFromCtx(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(userCtxKey).(AuthenticatedUser)
	return user, ok
}

// GetUserFromContext retrieves the authenticated user from the Gin context.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (AuthenticatedUser, bool) {
	return GetUserFromCtx(c.Request.Context())
}
