package middleware

import (
	"strings"

	"github.com/billboard-app/core/internal/pkg/auth0"
	"github.com/billboard-app/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const contextKeyIdentity = "identity"

// Auth returns a middleware that enforces bearer-token authentication
// against the identity provider and stores the verified identity in the
// request context.
func Auth(verifier *auth0.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// OptionalAuth may already have verified the token upstream.
		if IsAuthenticated(c) {
			c.Next()
			return
		}
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}

// OptionalAuth verifies a bearer token when one is present but lets
// anonymous requests through. Used on public reads that personalize for
// signed-in callers.
func OptionalAuth(verifier *auth0.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if identity, err := verifier.Verify(token); err == nil {
				c.Set(contextKeyIdentity, identity)
			}
		}
		c.Next()
	}
}

// CurrentIdentity extracts the authenticated identity from context.
// Returns nil on unauthenticated requests.
func CurrentIdentity(c *gin.Context) *auth0.Identity {
	v, _ := c.Get(contextKeyIdentity)
	identity, _ := v.(*auth0.Identity)
	return identity
}

// IsAuthenticated reports whether the request carries a verified identity.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentIdentity(c) != nil
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
