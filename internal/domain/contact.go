package domain

import "strconv"

// ContactMessage Model
type ContactMessage struct {
	ID        string  `gorm:"primaryKey;size:191" json:"id"`      // Email followed by the timestamp
	FirstName string  `gorm:"size:255;not null" json:"firstName"` // Sender first name
	LastName  string  `gorm:"size:255;not null" json:"lastName"`  // Sender last name
	Email     string  `gorm:"size:255;not null" json:"email"`     // Sender email
	Phone     *string `gorm:"size:64" json:"phone"`               // Optional phone number
	Message   string  `gorm:"type:text;not null" json:"message"`  // Message body
	Timestamp int64   `gorm:"index;not null" json:"timestamp"`    // Submission time in nanoseconds
}

// ContactMessageID derives the identifier the admin panel uses to address a message
func ContactMessageID(email string, timestamp int64) string {
	return email + strconv.FormatInt(timestamp, 10)
}
