package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"

	// SessionCookie is the cookie carrying the session token.
	SessionCookie = "session_token"
)

// Identity describes the authenticated caller resolved from a session token.
type Identity struct {
	UserID      int64
	Email       string
	DisplayName string
}

// IdentityResolver maps a session token to an identity. The sessions service
// implements this; handlers never see tokens, only the resolved user id.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// SessionAuth resolves the caller's session token (cookie or bearer header)
// and stores the identity in the request context.
func SessionAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid or expired session", err)
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(userEmailKey, identity.Email)
		c.Next()
	}
}

// UserIDFromContext returns the user id stored by SessionAuth, or 0.
func UserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
