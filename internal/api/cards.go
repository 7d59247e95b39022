package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity
	"web3_portal/internal/translate"  // Card copy translation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Identifier generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CardRequest represents a card sent by the admin panel
type CardRequest struct {
	ID          string `json:"id"`                               // Optional on create
	Title       string `json:"title" binding:"required"`         // Polish title
	Description string `json:"description" binding:"required"`   // Polish body
	ButtonTitle string `json:"buttonTitle" binding:"required"`   // Polish call to action
	Link        string `json:"link" binding:"required,http_url"` // Absolute http(s) link
	ImagePath   string `json:"imagePath" binding:"required"`     // Uploaded image path
}

func (r CardRequest) toCard() domain.Web3Card {
	return domain.Web3Card{
		ID:          strings.TrimSpace(r.ID),
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		ButtonTitle: strings.TrimSpace(r.ButtonTitle),
		Link:        strings.TrimSpace(r.Link),
		ImagePath:   strings.TrimSpace(r.ImagePath),
	}
}

// CardPreviewResponse is the card rendered in every language with a quality grade per translation
type CardPreviewResponse struct {
	Translation domain.Web3CardTranslation       `json:"translation"` // Card per language
	Quality     map[string]translate.CardQuality `json:"quality"`     // Grades for en and de
}

// ListCardsHandler returns every card, rendered in ?lang (default pl)
func ListCardsHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()                    // Request scoped context
		lang := c.DefaultQuery("lang", domain.LangPL) // Requested language
		if !domain.IsLanguage(lang) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Language must be pl, en or de"})
			return
		}
		cacheKey := cardsCachePrefix + "lang:" + lang // Cache per language
		var cached []domain.Web3Card
		// If cached data found, return it
		if cache.Get(ctx, cacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{"cards": cached, "lang": lang, "cached": true})
			return
		}
		cards := []domain.Web3Card{} // Never serialise as null
		if err := db.Order("created_at, id").Find(&cards).Error; err != nil {
			abortInternal(c, "Failed to fetch cards", err, nil)
			return
		}
		for i := range cards {
			cards[i] = translate.LocalizeCard(cards[i], lang) // Polish passes through unchanged
		}
		cache.Set(ctx, cacheKey, cards) // Cache the response for future requests
		c.JSON(http.StatusOK, gin.H{"cards": cards, "lang": lang, "cached": false})
	}
}

// AddCardHandler creates a card; the id is generated when omitted
func AddCardHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CardRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Title, description, button title, link and image are required"})
			return
		}
		card := req.toCard()
		if card.ID == "" {
			card.ID = uuid.NewString() // Generate an opaque identifier
		}
		found, err := exists(db, &domain.Web3Card{}, "id", card.ID)
		if err != nil {
			abortInternal(c, "Failed to create card", err, logrus.Fields{"card_id": card.ID})
			return
		}
		if found {
			c.JSON(http.StatusConflict, errorResponse{Error: "Card already exists"})
			return
		}
		if err := db.Create(&card).Error; err != nil {
			if isDuplicate(err) {
				c.JSON(http.StatusConflict, errorResponse{Error: "Card already exists"})
				return
			}
			abortInternal(c, "Failed to create card", err, logrus.Fields{"card_id": card.ID})
			return
		}
		cache.Invalidate(c.Request.Context(), cardsCachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin":   middleware.Principal(c), // Acting admin
			"card_id": card.ID,                 // Created card
		}).Info("Card added")
		c.JSON(http.StatusCreated, card)
	}
}

// UpdateCardHandler replaces an existing card
func UpdateCardHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CardRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Title, description, button title, link and image are required"})
			return
		}
		card := req.toCard()
		card.ID = c.Param("id") // Path wins over body
		var existing domain.Web3Card
		if err := db.Where("id = ?", card.ID).First(&existing).Error; err != nil {
			if isNotFound(err) {
				c.JSON(http.StatusNotFound, errorResponse{Error: "Card not found"})
				return
			}
			abortInternal(c, "Failed to update card", err, logrus.Fields{"card_id": card.ID})
			return
		}
		card.CreatedAt = existing.CreatedAt // Keep the listing position
		if err := db.Save(&card).Error; err != nil {
			abortInternal(c, "Failed to update card", err, logrus.Fields{"card_id": card.ID})
			return
		}
		cache.Invalidate(c.Request.Context(), cardsCachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin":   middleware.Principal(c), // Acting admin
			"card_id": card.ID,                 // Updated card
		}).Info("Card updated")
		c.JSON(http.StatusOK, card)
	}
}

// DeleteCardHandler removes a card
func DeleteCardHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := db.Where("id = ?", id).Delete(&domain.Web3Card{})
		if res.Error != nil {
			abortInternal(c, "Failed to delete card", res.Error, logrus.Fields{"card_id": id})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Card not found"})
			return
		}
		cache.Invalidate(c.Request.Context(), cardsCachePrefix) // Listings are stale
		logrus.WithFields(logrus.Fields{
			"admin":   middleware.Principal(c), // Acting admin
			"card_id": id,                      // Removed card
		}).Info("Card deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
	}
}

// CardPreviewHandler renders an unsaved card in every language
func CardPreviewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var card domain.Web3Card // Bind JSON request to struct
		if err := c.ShouldBindJSON(&card); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
			return
		}
		if card.Title == "" && card.Description == "" && card.ButtonTitle == "" {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Nothing to translate"})
			return
		}
		tr := translate.TranslateCard(card) // Render in every language
		c.JSON(http.StatusOK, CardPreviewResponse{
			Translation: tr,
			Quality: map[string]translate.CardQuality{
				domain.LangEN: translate.AssessCard(card, tr.EN), // English grades
				domain.LangDE: translate.AssessCard(card, tr.DE), // German grades
			},
		})
	}
}
