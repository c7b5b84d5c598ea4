package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"projectpad/internal/pkg/jwtutil"
	"projectpad/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// AuthJWT verifies the Bearer token and stashes the claim user id in the
// request context. Historically the project endpoints skipped this check
// entirely; it is only mounted when enforcement is switched on.
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
		c.Next()
	}
}

// UserIDFromContext returns the verified user id, or "" when the request
// did not pass through AuthJWT.
func UserIDFromContext(c *gin.Context) string {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	userID, ok := value.(string)
	if !ok {
		return ""
	}
	return userID
}
