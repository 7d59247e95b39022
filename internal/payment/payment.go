// Package payment opens and inspects hosted checkout sessions.
package payment

import (
	"context" // Request scoped cancellation
	"errors"  // Sentinel errors

	"web3_portal/internal/domain" // Shopping items and session status
)

// ErrNotConfigured is returned when no gateway secret key was set
var ErrNotConfigured = errors.New("payment gateway is not configured")

// CheckoutRequest describes a checkout session to open
type CheckoutRequest struct {
	Items             []domain.ShoppingItem // Line items, already validated
	SuccessURL        string                // Where the gateway sends a paying customer
	CancelURL         string                // Where the gateway sends a customer who gave up
	AllowedCountries  []string              // Shipping countries, empty skips address collection
	ClientReferenceID string                // Caller principal, empty for anonymous callers
}

// Session is the part of a gateway session the site cares about
type Session struct {
	ID                string `json:"id"`            // Gateway session id
	URL               string `json:"url"`           // Hosted checkout page
	Status            string `json:"status"`        // open, complete or expired
	PaymentStatus     string `json:"paymentStatus"` // paid, unpaid or no_payment_required
	ClientReferenceID string `json:"-"`             // Principal passed on create
	Raw               string `json:"-"`             // Gateway response as JSON
}

// Paid reports whether the customer completed payment
func (s *Session) Paid() bool {
	return s.PaymentStatus == "paid" || s.PaymentStatus == "no_payment_required"
}

// Gateway talks to the payment provider with the given secret key
type Gateway interface {
	CreateSession(ctx context.Context, secretKey string, req CheckoutRequest) (*Session, error)
	GetSession(ctx context.Context, secretKey, id string) (*Session, error)
}

// StatusOf converts a session into the status reported to the site
func StatusOf(s *Session) domain.StripeSessionStatus {
	if !s.Paid() {
		reason := "payment not completed"
		if s.Status == "expired" {
			reason = "session expired" // Customer never finished in time
		}
		return domain.StripeSessionStatus{Failed: &domain.StripeSessionFailed{Error: reason}}
	}
	var principal *string // Absent for anonymous purchases
	if s.ClientReferenceID != "" {
		p := s.ClientReferenceID
		principal = &p
	}
	return domain.StripeSessionStatus{Completed: &domain.StripeSessionCompleted{
		UserPrincipal: principal, // Who paid, when known
		Response:      s.Raw,     // Full gateway response for the caller
	}}
}
