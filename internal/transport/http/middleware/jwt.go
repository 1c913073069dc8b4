package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/pkg/jwtutil"
	"fitmanager/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthJWT verifies the bearer token and attaches the caller's identity to the
// request context. Verification is stateless; no session is kept.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Message(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Message(c, http.StatusUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by AuthJWT.
func UserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
