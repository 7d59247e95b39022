package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// keyedText is a row addressed by a text key and holding one text per language
type keyedText[T any] interface {
	*T
	GetKey() string
	SetKey(key string)
	Localized() domain.LocalizedText
	SetLocalized(texts domain.LocalizedText)
}

// textResource names a keyed text table in responses, logs and cache keys
type textResource struct {
	singular    string // JSON field for one row
	plural      string // JSON field for a listing
	label       string // Human readable name used in messages
	cachePrefix string // Cache key prefix
}

var (
	translationResource = textResource{singular: "translation", plural: "translations", label: "Translation", cachePrefix: translationsCachePrefix}
	rodoResource        = textResource{singular: "rodoContent", plural: "rodoContents", label: "RODO content", cachePrefix: rodoCachePrefix}
)

const textKeyColumn = "text_key"

// ListTextsHandler returns every row, or with ?lang a key to text map for one language
func ListTextsHandler[T any, PT keyedText[T]](db *gorm.DB, cache *Cache, res textResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request scoped context
		lang := c.Query("lang")    // Optional language filter
		if lang != "" && !domain.IsLanguage(lang) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Language must be pl, en or de"})
			return
		}

		if lang != "" {
			cacheKey := res.cachePrefix + "lang:" + lang
			var cached map[string]string
			// If cached data found, return it
			if cache.Get(ctx, cacheKey, &cached) {
				c.JSON(http.StatusOK, gin.H{res.plural: cached, "lang": lang, "cached": true})
				return
			}
			rows, err := loadTexts[T](db)
			if err != nil {
				abortInternal(c, "Failed to fetch "+res.plural, err, nil)
				return
			}
			texts := make(map[string]string, len(rows)) // Key to text
			for i := range rows {
				row := PT(&rows[i])
				texts[row.GetKey()] = row.Localized().Text(lang)
			}
			cache.Set(ctx, cacheKey, texts) // Cache the response for future requests
			c.JSON(http.StatusOK, gin.H{res.plural: texts, "lang": lang, "cached": false})
			return
		}

		cacheKey := res.cachePrefix + "all"
		var cached []T
		// If cached data found, return it
		if cache.Get(ctx, cacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{res.plural: cached, "cached": true})
			return
		}
		rows, err := loadTexts[T](db)
		if err != nil {
			abortInternal(c, "Failed to fetch "+res.plural, err, nil)
			return
		}
		cache.Set(ctx, cacheKey, rows) // Cache the response for future requests
		c.JSON(http.StatusOK, gin.H{res.plural: rows, "cached": false})
	}
}

func loadTexts[T any](db *gorm.DB) ([]T, error) {
	rows := []T{} // Never serialise as null
	err := db.Order(textKeyColumn).Find(&rows).Error
	return rows, err
}

// GetTextHandler returns the row stored under :key
func GetTextHandler[T any, PT keyedText[T]](db *gorm.DB, cache *Cache, res textResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()                 // Request scoped context
		key := c.Param("key")                      // Requested key
		cacheKey := res.cachePrefix + "key:" + key // Per key cache entry
		var row T
		// If cached data found, return it
		if cache.Get(ctx, cacheKey, &row) {
			c.JSON(http.StatusOK, gin.H{res.singular: row, "cached": true})
			return
		}
		if err := db.Where(textKeyColumn+" = ?", key).First(&row).Error; err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, errorResponse{Error: res.label + " not found"})
				return
			}
			abortInternal(c, "Failed to fetch "+res.singular, err, logrus.Fields{"key": key})
			return
		}
		cache.Set(ctx, cacheKey, row) // Cache the response for future requests
		c.JSON(http.StatusOK, gin.H{res.singular: row, "cached": false})
	}
}

// bindText reads the texts from the body and the key from the path
func bindText[T any, PT keyedText[T]](c *gin.Context) (*T, bool) {
	var texts domain.LocalizedText // Bind JSON request to struct
	if err := c.ShouldBindJSON(&texts); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
		return nil, false
	}
	key := strings.TrimSpace(c.Param("key"))
	if key == "" || texts.PL == "" {
		// Polish is the source language and must always be present
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Key and Polish text are required"})
		return nil, false
	}
	row := new(T)
	PT(row).SetKey(key)
	PT(row).SetLocalized(texts)
	return row, true
}

// AddTextHandler creates the row under :key; an existing key is a conflict
func AddTextHandler[T any, PT keyedText[T]](db *gorm.DB, cache *Cache, res textResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, ok := bindText[T, PT](c)
		if !ok {
			return
		}
		key := PT(row).GetKey()
		found, err := exists(db, new(T), textKeyColumn, key)
		if err != nil {
			abortInternal(c, "Failed to create "+res.singular, err, logrus.Fields{"key": key})
			return
		}
		if found {
			c.JSON(http.StatusConflict, errorResponse{Error: res.label + " already exists"})
			return
		}
		if err := db.Create(row).Error; err != nil {
			if isDuplicate(err) {
				c.JSON(http.StatusConflict, errorResponse{Error: res.label + " already exists"})
				return
			}
			abortInternal(c, "Failed to create "+res.singular, err, logrus.Fields{"key": key})
			return
		}
		cache.Invalidate(c.Request.Context(), res.cachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"key":   key,                     // Created key
		}).Info(res.label + " added")
		c.JSON(http.StatusCreated, gin.H{res.singular: row})
	}
}

// UpdateTextHandler replaces the row under :key
func UpdateTextHandler[T any, PT keyedText[T]](db *gorm.DB, cache *Cache, res textResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, ok := bindText[T, PT](c)
		if !ok {
			return
		}
		key := PT(row).GetKey()
		found, err := exists(db, new(T), textKeyColumn, key)
		if err != nil {
			abortInternal(c, "Failed to update "+res.singular, err, logrus.Fields{"key": key})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, errorResponse{Error: res.label + " not found"})
			return
		}
		if err := db.Save(row).Error; err != nil {
			abortInternal(c, "Failed to update "+res.singular, err, logrus.Fields{"key": key})
			return
		}
		cache.Invalidate(c.Request.Context(), res.cachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"key":   key,                     // Updated key
		}).Info(res.label + " updated")
		c.JSON(http.StatusOK, gin.H{res.singular: row})
	}
}

// DeleteTextHandler removes the row under :key
func DeleteTextHandler[T any, PT keyedText[T]](db *gorm.DB, cache *Cache, res textResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		result := db.Where(textKeyColumn+" = ?", key).Delete(new(T))
		if result.Error != nil {
			abortInternal(c, "Failed to delete "+res.singular, result.Error, logrus.Fields{"key": key})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: res.label + " not found"})
			return
		}
		cache.Invalidate(c.Request.Context(), res.cachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"key":   key,                     // Removed key
		}).Info(res.label + " deleted")
		c.JSON(http.StatusOK, gin.H{"message": res.label + " deleted"})
	}
}
