package domain

// ShoppingItem is one line of a checkout request
type ShoppingItem struct {
	ProductName        string `json:"productName" binding:"required"`       // Name shown on the payment page
	ProductDescription string `json:"productDescription"`                   // Optional description
	Currency           string `json:"currency" binding:"required,len=3"`    // ISO 4217 code
	Quantity           int64  `json:"quantity" binding:"required,gt=0"`     // Number of units
	PriceInCents       int64  `json:"priceInCents" binding:"required,gt=0"` // Unit price in the smallest currency unit
}

// StripeConfiguration Model, a single row holding the payment gateway settings
type StripeConfiguration struct {
	ID               uint     `gorm:"primaryKey" json:"-"`                               // Always 1
	SecretKey        string   `gorm:"size:255;not null" json:"secretKey"`                // Gateway secret key
	AllowedCountries []string `gorm:"serializer:json;type:text" json:"allowedCountries"` // Shipping countries offered at checkout
}

// StripeConfigurationID is the primary key of the only configuration row
const StripeConfigurationID uint = 1

// StripeSessionStatus is either Completed or Failed
type StripeSessionStatus struct {
	Completed *StripeSessionCompleted `json:"completed,omitempty"` // Set when the session was paid
	Failed    *StripeSessionFailed    `json:"failed,omitempty"`    // Set otherwise
}

// StripeSessionCompleted describes a paid session
type StripeSessionCompleted struct {
	UserPrincipal *string `json:"userPrincipal"` // Principal that opened the session, if any
	Response      string  `json:"response"`      // Raw gateway response
}

// StripeSessionFailed describes a session that is not paid
type StripeSessionFailed struct {
	Error string `json:"error"` // Reason reported to the caller
}
