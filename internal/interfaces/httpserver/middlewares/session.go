package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

const sessionKey = "admin_session"

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireSession gates the admin surface behind a live session. Requests
// without a valid token never reach the handler.
func RequireSession(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		session, err := sessions.Current(c.Request.Context(), token)
		if err != nil {
			if platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfiguration) {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin authentication is not configured"})
				return
			}
			abortUnauthorized(c, "invalid or expired session")
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session attached by RequireSession.
func SessionFromContext(c *gin.Context) (*auth.Session, bool) {
	if val, ok := c.Get(sessionKey); ok {
		if session, ok := val.(*auth.Session); ok {
			return session, true
		}
	}
	return nil, false
}
