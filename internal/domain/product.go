package domain

// Product Model
type Product struct {
	ID           string `gorm:"primaryKey;size:191" json:"id"`          // Opaque product identifier
	Name         string `gorm:"size:255" json:"name"`                   // Display name
	Description  string `gorm:"type:text" json:"description"`           // Long description
	PriceInCents int64  `gorm:"not null;default:0" json:"priceInCents"` // Price in the smallest currency unit
	Currency     string `gorm:"size:3" json:"currency"`                 // ISO 4217 code
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli" json:"updatedAt"`  // Timestamp of last change in milliseconds
}
