package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clinica/appointments-api/internal/httperr"
)

const ContextUsername = "username"

type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// AuthMiddleware rejects the request before any handler runs unless it
// carries Authorization: Bearer <valid token>.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, httperr.CodeUnauthenticated)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, httperr.CodeUnauthenticated)
			return
		}

		username, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, httperr.CodeUnauthenticated)
			return
		}

		c.Set(ContextUsername, username)
		c.Next()
	}
}

// Username is the identity set by AuthMiddleware.
func Username(c *gin.Context) string {
	return c.GetString(ContextUsername)
}
