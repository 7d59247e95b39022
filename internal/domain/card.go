package domain

// Web3Card Model, a showcase card on the home page
type Web3Card struct {
	ID          string `gorm:"primaryKey;size:191" json:"id"`  // Opaque card identifier
	Title       string `gorm:"size:255;not null" json:"title"` // Card title (Polish)
	Description string `gorm:"type:text" json:"description"`   // Card body (Polish)
	ButtonTitle string `gorm:"size:255" json:"buttonTitle"`    // Call to action label (Polish)
	Link        string `gorm:"size:2048" json:"link"`          // Target of the call to action
	ImagePath   string `gorm:"size:512" json:"imagePath"`      // Path of the card image in blob storage
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"-"`  // Used to keep a stable listing order
}

// Web3CardTranslation holds one card rendered in every site language
type Web3CardTranslation struct {
	PL Web3Card `json:"pl"` // Stored card
	EN Web3Card `json:"en"` // English rendering
	DE Web3Card `json:"de"` // German rendering
}
