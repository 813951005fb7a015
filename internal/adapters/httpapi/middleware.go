package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// actorKey is the gin context key holding the authenticated actor ID.
const actorKey = "bpos_actor_id"

// BearerAuth validates "Authorization: Bearer <token>" against the token
// map and stores the resolved actor ID in the context. Unknown or missing
// tokens get a 401 before any handler runs.
func BearerAuth(tokens map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		actor, ok := tokens[token]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// actorID returns the authenticated actor for the request. Empty when the
// route is unauthenticated.
func actorID(c *gin.Context) string {
	return c.GetString(actorKey)
}
