package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pjavier1988/todo-api/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

// Authenticator resolves an opaque bearer token to the owning user.
type Authenticator interface {
	AuthenticateByToken(ctx context.Context, token string) (domain.User, error)
}

// UserIDFromContext returns the current user ID set by RequireToken. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireToken returns a middleware that checks for a valid bearer token in
// the Authorization header and sets the current user ID in context.
// If missing, unknown or expired, responds with 401.
func RequireToken(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		u, err := authn.AuthenticateByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, u.ID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
