package middleware

import (
	"net/http"                    // HTTP status codes
	"web3_portal/internal/access" // Role lookups
	"web3_portal/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AdminOnlyMiddleware checks the caller's role from the database on each request
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, "Admin access required", domain.RoleAdmin)
}

// RegisteredOnlyMiddleware lets registered users and admins through
func RegisteredOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, "Registered user required", domain.RoleAdmin, domain.RoleUser)
}

func requireRole(db *gorm.DB, message string, allowed ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c) // Get principal from context
		// Check if the caller is authenticated
		if principal == "" {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		role, err := access.RoleOf(db, principal) // Fetch role from database
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"principal": principal,   // Caller
				"error":     err.Error(), // Error message
			}).Error("Role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
			return
		}
		for _, r := range allowed {
			if role == r {
				c.Next() // Role accepted, proceed to the next handler
				return
			}
		}
		// Role not accepted, abort with forbidden status
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
	}
}
