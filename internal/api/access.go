package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"web3_portal/internal/access"     // Roles and profiles
	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AssignRoleRequest represents a role assignment by an admin
type AssignRoleRequest struct {
	Principal string          `json:"principal" binding:"required"` // Target principal
	Role      domain.UserRole `json:"role" binding:"required"`      // admin, user or guest
}

// CallerStatusResponse describes the caller
type CallerStatusResponse struct {
	Principal string `json:"principal"` // Verified identity
	IsAdmin   bool   `json:"isAdmin"`   // Whether the caller holds the admin role
}

// InitializeAccessHandler registers the caller; the very first caller becomes admin
func InitializeAccessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := middleware.Principal(c)          // Get principal from context
		role, err := access.Initialize(db, principal) // Register caller if unknown
		if err != nil {
			abortInternal(c, "Failed to initialize access control", err, logrus.Fields{"principal": principal})
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"principal": principal, // Caller
			"role":      role,      // Resulting role
		}).Info("Access control initialized for caller")
		c.JSON(http.StatusOK, gin.H{"role": role}) // Return the caller's role
	}
}

// CallerRoleHandler returns the caller's role; anonymous callers are guests
func CallerRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := access.RoleOf(db, middleware.Principal(c)) // Look up caller role
		if err != nil {
			abortInternal(c, "Failed to load role", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role}) // Return the role
	}
}

// IsCallerAdminHandler reports whether the caller is an admin
func IsCallerAdminHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := access.IsAdmin(db, middleware.Principal(c)) // Look up caller role
		if err != nil {
			abortInternal(c, "Failed to load role", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"isAdmin": admin}) // Return admin status
	}
}

// CallerStatusHandler returns the caller's principal together with its admin status
func CallerStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := middleware.Principal(c)        // Get principal from context
		admin, err := access.IsAdmin(db, principal) // Look up caller role
		if err != nil {
			abortInternal(c, "Failed to load role", err, nil)
			return
		}
		c.JSON(http.StatusOK, CallerStatusResponse{Principal: principal, IsAdmin: admin})
	}
}

// AssignRoleHandler lets an admin set the role of any principal
func AssignRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignRoleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
			return
		}
		// Admins cannot demote themselves and lock everyone out
		if req.Principal == middleware.Principal(c) && req.Role != domain.RoleAdmin {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Cannot change your own role"})
			return
		}
		if err := access.AssignRole(db, req.Principal, req.Role); err != nil {
			if errors.Is(err, access.ErrInvalidRole) {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "Role must be admin, user or guest"})
				return
			}
			abortInternal(c, "Failed to assign role", err, logrus.Fields{"target": req.Principal})
			return
		}
		// Log the role change
		logrus.WithFields(logrus.Fields{
			"admin":  middleware.Principal(c), // Acting admin
			"target": req.Principal,           // Affected principal
			"role":   req.Role,                // New role
		}).Info("Role assigned")
		c.JSON(http.StatusOK, gin.H{"principal": req.Principal, "role": req.Role})
	}
}

// CallerProfileHandler returns the caller's profile, or null when none was saved
func CallerProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := access.Profile(db, middleware.Principal(c)) // Load profile
		if err != nil {
			abortInternal(c, "Failed to load profile", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": profile}) // Null when absent
	}
}

// SaveCallerProfileHandler stores the caller's profile
func SaveCallerProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.UserProfile // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Name is required"})
			return
		}
		principal := middleware.Principal(c) // Get principal from context
		if err := access.SaveProfile(db, principal, req); err != nil {
			abortInternal(c, "Failed to save profile", err, logrus.Fields{"principal": principal})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": req}) // Return the saved profile
	}
}

// UserProfileHandler returns another principal's profile to that principal or an admin
func UserProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Principal(c) // Get principal from context
		target := c.Param("principal")    // Requested principal
		if caller != target {
			admin, err := access.IsAdmin(db, caller)
			if err != nil {
				abortInternal(c, "Failed to load role", err, nil)
				return
			}
			if !admin {
				// Only the owner or an admin may read a profile
				c.JSON(http.StatusForbidden, errorResponse{Error: "Can only view your own profile"})
				return
			}
		}
		profile, err := access.Profile(db, target) // Load profile
		if err != nil {
			abortInternal(c, "Failed to load profile", err, logrus.Fields{"target": target})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": profile}) // Null when absent
	}
}
