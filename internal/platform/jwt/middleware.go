package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookmark_backend/internal/api"
)

// TokenVerifier verifies a raw bearer token.
type TokenVerifier interface {
	VerifyToken(token string) (Identity, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token and
// attaches the caller's Identity to both the gin context and the request
// context. Requests without a valid token are rejected with 401.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no token provided"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no token provided"})
			return
		}

		// 2. Verify signature, algorithm and expiry
		id, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 3. Attach identity for the lifetime of this request
		c.Set(ContextIdentity, id)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))

		c.Next()
	}
}

// RequireAdmin rejects callers whose role is not ADMIN with 403.
// It must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no token provided"})
			return
		}
		if !id.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}
