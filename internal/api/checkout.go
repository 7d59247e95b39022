package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity
	"web3_portal/internal/payment"    // Payment gateway

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// StripeConfigRequest represents the gateway settings sent by an admin
type StripeConfigRequest struct {
	SecretKey        string   `json:"secretKey" binding:"required"`          // Gateway secret key
	AllowedCountries []string `json:"allowedCountries" binding:"dive,len=2"` // ISO 3166-1 alpha-2 codes
}

// CheckoutRequest represents a checkout started by the website
type CheckoutRequest struct {
	Items      []domain.ShoppingItem `json:"items" binding:"required,min=1,dive"`    // Cart lines
	SuccessURL string                `json:"successUrl" binding:"required,http_url"` // Redirect after payment
	CancelURL  string                `json:"cancelUrl" binding:"required,http_url"`  // Redirect after cancel
}

// loadStripeConfig returns the stored configuration, or nil when none was set
func loadStripeConfig(db *gorm.DB) (*domain.StripeConfiguration, error) {
	var cfg domain.StripeConfiguration
	err := db.Where("id = ?", domain.StripeConfigurationID).First(&cfg).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetStripeConfigHandler stores the gateway settings
func SetStripeConfigHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StripeConfigRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.SecretKey) == "" {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Secret key is required and countries must be two letter codes"})
			return
		}
		countries := make([]string, 0, len(req.AllowedCountries))
		for _, country := range req.AllowedCountries {
			countries = append(countries, strings.ToUpper(country)) // Gateway expects upper case
		}
		cfg := domain.StripeConfiguration{
			ID:               domain.StripeConfigurationID, // Single row
			SecretKey:        strings.TrimSpace(req.SecretKey),
			AllowedCountries: countries,
		}
		if err := db.Save(&cfg).Error; err != nil {
			abortInternal(c, "Failed to save payment configuration", err, nil)
			return
		}
		// Never log the key itself
		logrus.WithFields(logrus.Fields{
			"admin":     middleware.Principal(c), // Acting admin
			"countries": countries,               // Shipping countries
		}).Info("Payment configuration updated")
		c.JSON(http.StatusOK, gin.H{"configured": true})
	}
}

// StripeConfiguredHandler reports whether checkout is available
func StripeConfiguredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := loadStripeConfig(db)
		if err != nil {
			abortInternal(c, "Failed to load payment configuration", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": cfg != nil && cfg.SecretKey != ""})
	}
}

// CreateCheckoutHandler opens a hosted checkout session for the cart
func CreateCheckoutHandler(db *gorm.DB, gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid checkout request"})
			return
		}
		cfg, err := loadStripeConfig(db)
		if err != nil {
			abortInternal(c, "Failed to load payment configuration", err, nil)
			return
		}
		if cfg == nil || cfg.SecretKey == "" {
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Checkout is not configured"})
			return
		}
		principal := middleware.Principal(c) // Empty for anonymous shoppers
		session, err := gateway.CreateSession(c.Request.Context(), cfg.SecretKey, payment.CheckoutRequest{
			Items:             req.Items,
			SuccessURL:        req.SuccessURL,
			CancelURL:         req.CancelURL,
			AllowedCountries:  cfg.AllowedCountries,
			ClientReferenceID: principal,
		})
		if err != nil {
			if errors.Is(err, payment.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Checkout is not configured"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"principal": principal,      // Shopper, if known
				"items":     len(req.Items), // Cart size
				"error":     err.Error(),    // Error message
			}).Error("Checkout session creation failed")
			c.JSON(http.StatusBadGateway, errorResponse{Error: "Failed to create checkout session"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"session_id": session.ID,     // Gateway session
			"principal":  principal,      // Shopper, if known
			"items":      len(req.Items), // Cart size
		}).Info("Checkout session created")
		c.JSON(http.StatusCreated, gin.H{"id": session.ID, "url": session.URL})
	}
}

// CheckoutStatusHandler reports whether the session :id was paid
func CheckoutStatusHandler(db *gorm.DB, gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := loadStripeConfig(db)
		if err != nil {
			abortInternal(c, "Failed to load payment configuration", err, nil)
			return
		}
		if cfg == nil || cfg.SecretKey == "" {
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Checkout is not configured"})
			return
		}
		id := c.Param("id")
		session, err := gateway.GetSession(c.Request.Context(), cfg.SecretKey, id)
		if err != nil {
			// An unknown session is reported as failed rather than as a transport error
			logrus.WithFields(logrus.Fields{"session_id": id, "error": err.Error()}).Warn("Checkout session lookup failed")
			c.JSON(http.StatusOK, domain.StripeSessionStatus{Failed: &domain.StripeSessionFailed{Error: "session not found"}})
			return
		}
		c.JSON(http.StatusOK, payment.StatusOf(session))
	}
}
