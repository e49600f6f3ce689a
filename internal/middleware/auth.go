package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minibank/ledger-api/internal/token"
)

const usernameKey = "username"

// AuthMiddleware gates protected routes behind a bearer token. Every failure
// mode (missing header, wrong shape, bad signature, expired) gets the same
// 403 response so callers cannot probe which check failed.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			rejectForbidden(c)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			rejectForbidden(c)
			return
		}

		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Exactly two space-separated parts are required; the scheme matches
// case-insensitively. Anything else counts as no token.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func rejectForbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"message": "Invalid or expired token",
	})
	c.Abort()
}

// GetUsername returns the authenticated username set by AuthMiddleware.
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}
