package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Identifier generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ProductRequest represents a product sent by the admin panel
type ProductRequest struct {
	ID           string `json:"id"`                                 // Optional on create
	Name         string `json:"name"`                               // Display name
	Description  string `json:"description"`                        // Long description
	PriceInCents int64  `json:"priceInCents" binding:"gte=0"`       // Price in the smallest currency unit
	Currency     string `json:"currency" binding:"omitempty,len=3"` // ISO 4217 code
}

func (r ProductRequest) toProduct() domain.Product {
	return domain.Product{
		ID:           strings.TrimSpace(r.ID),
		Name:         r.Name,
		Description:  r.Description,
		PriceInCents: r.PriceInCents,
		Currency:     strings.ToUpper(r.Currency),
	}
}

// ListProductsHandler returns every product
func ListProductsHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()              // Request scoped context
		cacheKey := productsCachePrefix + "all" // Single cached listing
		var cached []domain.Product
		// If cached data found, return it
		if cache.Get(ctx, cacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
			return
		}
		products := []domain.Product{} // Never serialise as null
		if err := db.Order("id").Find(&products).Error; err != nil {
			abortInternal(c, "Failed to fetch products", err, nil)
			return
		}
		cache.Set(ctx, cacheKey, products) // Cache the response for future requests
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false})
	}
}

// AddProductHandler creates a product; the id is generated when omitted
func AddProductHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
			return
		}
		product := req.toProduct()
		if product.ID == "" {
			product.ID = uuid.NewString() // Generate an opaque identifier
		}
		found, err := exists(db, &domain.Product{}, "id", product.ID)
		if err != nil {
			abortInternal(c, "Failed to create product", err, logrus.Fields{"product_id": product.ID})
			return
		}
		if found {
			c.JSON(http.StatusConflict, errorResponse{Error: "Product already exists"})
			return
		}
		if err := db.Create(&product).Error; err != nil {
			if isDuplicate(err) {
				c.JSON(http.StatusConflict, errorResponse{Error: "Product already exists"})
				return
			}
			abortInternal(c, "Failed to create product", err, logrus.Fields{"product_id": product.ID})
			return
		}
		cache.Invalidate(c.Request.Context(), productsCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin":      middleware.Principal(c), // Acting admin
			"product_id": product.ID,              // Created product
		}).Info("Product added")
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler replaces an existing product
func UpdateProductHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
			return
		}
		product := req.toProduct()
		product.ID = c.Param("id") // Path wins over body
		found, err := exists(db, &domain.Product{}, "id", product.ID)
		if err != nil {
			abortInternal(c, "Failed to update product", err, logrus.Fields{"product_id": product.ID})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		if err := db.Save(&product).Error; err != nil { // Save writes every column, cleared fields included
			abortInternal(c, "Failed to update product", err, logrus.Fields{"product_id": product.ID})
			return
		}
		cache.Invalidate(c.Request.Context(), productsCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin":      middleware.Principal(c), // Acting admin
			"product_id": product.ID,              // Updated product
		}).Info("Product updated")
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler removes a product
func DeleteProductHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := db.Where("id = ?", id).Delete(&domain.Product{})
		if res.Error != nil {
			abortInternal(c, "Failed to delete product", res.Error, logrus.Fields{"product_id": id})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		cache.Invalidate(c.Request.Context(), productsCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin":      middleware.Principal(c), // Acting admin
			"product_id": id,                      // Removed product
		}).Info("Product deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
