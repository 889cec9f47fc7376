package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adewale-dev/portfolio-api/internal/sessions"
	"github.com/adewale-dev/portfolio-api/internal/tokens"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (*tokens.Identity, error)
}

// RequireAuth verifies the Bearer token, rejects blacklisted tokens, and
// stores the resolved identity in the request context. Every admin-only route
// goes through this; public routes simply never mount it.
func RequireAuth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		if revoked, err := sessions.IsAccessTokenBlacklisted(c.Request.Context(), token); err == nil && revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		id, err := ver.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// Identity returns the identity resolved by RequireAuth, if any.
func Identity(c *gin.Context) (*tokens.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*tokens.Identity)
	return id, ok
}
