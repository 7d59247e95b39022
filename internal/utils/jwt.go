package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrMissingPrincipal is returned for a valid token without a principal
var ErrMissingPrincipal = errors.New("token has no principal")

// JWT Claims issued by the identity provider
type Claims struct {
	Principal            string `json:"principal"` // Caller identity
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a token for a principal; used by the dev token command and tests
func GenerateJWT(principal, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		Principal: principal, // Custom claim for the caller identity
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal,                               // Subject mirrors the principal
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Token lifetime
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string and returns its claims
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid // Return error if token is invalid
	}
	// Older tokens only carry the subject
	if claims.Principal == "" {
		claims.Principal = claims.Subject
	}
	if claims.Principal == "" {
		return nil, ErrMissingPrincipal
	}
	return claims, nil
}
