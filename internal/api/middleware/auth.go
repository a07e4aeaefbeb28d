package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ownerKey is the context key the auth middleware stores the
// authenticated user id under.
const ownerKey = "owner_id"

// TokenParser validates a session token and returns the user id.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Auth returns a bearer-token authentication middleware. Every request
// passing it carries the owner id of the authenticated user.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		userID, err := parser.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ownerKey, userID)
		c.Next()
	}
}

// OwnerID returns the authenticated user id set by Auth.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerKey)
}
