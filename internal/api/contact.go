package api

import (
	"encoding/csv" // CSV export
	"net/http"     // HTTP status codes
	"strings"      // String manipulation
	"time"         // Timestamps
	"unicode/utf8" // Character counting

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Field validation
	"github.com/sirupsen/logrus"             // Logging library
	"gorm.io/gorm"                           // GORM ORM library
)

// MaxContactMessageLength is the longest accepted message, in characters
const MaxContactMessageLength = 250

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FirstName string  `json:"firstName" binding:"required"` // Sender first name
	LastName  string  `json:"lastName" binding:"required"`  // Sender last name
	Email     string  `json:"email" binding:"required"`     // Sender email
	Phone     *string `json:"phone"`                        // Optional phone number
	Message   string  `json:"message" binding:"required"`   // Message body
}

// validate checks the rules the website form enforces
func (r *ContactRequest) validate() string {
	tooLong := utf8.RuneCountInString(r.Message) > MaxContactMessageLength // Counted as typed, before trimming
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Message == "" {
		return "First name, last name, email and message are required"
	}
	if !isValidEmail(r.Email) {
		return "Email address is invalid"
	}
	if tooLong {
		return "Message must be at most 250 characters"
	}
	if r.Phone != nil {
		phone := strings.TrimSpace(*r.Phone)
		if phone == "" {
			r.Phone = nil // Empty phone means no phone
		} else {
			r.Phone = &phone
		}
	}
	return ""
}

// validate is shared by the checks gin binding tags cannot express
var validate = validator.New()

// isValidEmail checks the address with the same rules as the email binding tag
func isValidEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// SubmitContactHandler stores a contact form submission
func SubmitContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "First name, last name, email and message are required"})
			return
		}
		// Validate fields
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
			return
		}
		timestamp := time.Now().UnixNano() // Submission time in nanoseconds
		message := domain.ContactMessage{
			ID:        domain.ContactMessageID(req.Email, timestamp), // Identifier used by the admin panel
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Message:   req.Message,
			Timestamp: timestamp,
		}
		if err := db.Create(&message).Error; err != nil {
			abortInternal(c, "Failed to submit contact message", err, logrus.Fields{"email": req.Email})
			return
		}
		// Log the submission
		logrus.WithFields(logrus.Fields{
			"message_id": message.ID,   // Stored message
			"client_ip":  c.ClientIP(), // Sender address
		}).Info("Contact message received")
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": message.ID})
	}
}

// ListContactMessagesHandler returns every message, newest first
func ListContactMessagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages := []domain.ContactMessage{} // Never serialise as null
		if err := db.Order("timestamp desc").Find(&messages).Error; err != nil {
			abortInternal(c, "Failed to fetch contact messages", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages, "total": len(messages)})
	}
}

// DeleteContactMessageHandler removes a message by its id (email followed by timestamp)
func DeleteContactMessageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := db.Where("id = ?", id).Delete(&domain.ContactMessage{})
		if res.Error != nil {
			abortInternal(c, "Failed to delete contact message", res.Error, logrus.Fields{"message_id": id})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Message not found"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin":      middleware.Principal(c), // Acting admin
			"message_id": id,                      // Removed message
		}).Info("Contact message deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}

// csvCell keeps spreadsheets from evaluating visitor text as a formula
func csvCell(value string) string {
	if value != "" && strings.ContainsRune("=+-@\t\r", rune(value[0])) {
		return "'" + value // Leading quote forces a text cell
	}
	return value
}

// ExportContactMessagesHandler streams messages as CSV; ?id may repeat to pick a selection
func ExportContactMessagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("timestamp desc") // Newest first, like the listing
		if ids := c.QueryArray("id"); len(ids) > 0 {
			query = query.Where("id IN ?", ids) // Only the selected messages
		}
		var messages []domain.ContactMessage
		if err := query.Find(&messages).Error; err != nil {
			abortInternal(c, "Failed to export contact messages", err, nil)
			return
		}
		if len(messages) == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: "No messages selected"})
			return
		}

		filename := "contact-messages-" + time.Now().UTC().Format("2006-01-02") + ".csv"
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Status(http.StatusOK)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{"id", "first_name", "last_name", "email", "phone", "message", "submitted_at"})
		for _, m := range messages {
			phone := ""
			if m.Phone != nil {
				phone = *m.Phone
			}
			_ = w.Write([]string{
				csvCell(m.ID),
				csvCell(m.FirstName),
				csvCell(m.LastName),
				csvCell(m.Email),
				csvCell(phone),
				csvCell(m.Message),
				time.Unix(0, m.Timestamp).UTC().Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			logrus.WithField("error", err.Error()).Error("CSV export failed")
		}
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"count": len(messages),           // Exported rows
		}).Info("Contact messages exported")
	}
}
