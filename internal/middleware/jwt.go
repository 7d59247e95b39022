package middleware

import (
	"net/http"                   // HTTP status codes
	"strings"                    // String manipulation
	"web3_portal/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// PrincipalKey is the gin context key holding the verified caller identity
const PrincipalKey = "principal"

// Principal returns the verified caller identity, or "" for anonymous callers
func Principal(c *gin.Context) string {
	return c.GetString(PrincipalKey)
}

// JWTAuthMiddleware validates JWT tokens and rejects anonymous callers
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return authenticate(secret, true)
}

// OptionalAuthMiddleware validates a token when one is sent and lets anonymous callers through
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return authenticate(secret, false)
}

func authenticate(secret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" && !required {
			c.Next() // Anonymous caller
			return
		}
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(PrincipalKey, claims.Principal) // Store principal in context
		c.Next()                              // Proceed to the next handler
	}
}
