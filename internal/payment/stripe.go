package payment

import (
	"context"       // Request scoped cancellation
	"encoding/json" // Fallback session encoding
	"fmt"           // Error wrapping
	"strings"       // Key and currency normalisation

	"github.com/stripe/stripe-go/v76"        // Stripe API types
	"github.com/stripe/stripe-go/v76/client" // Per key Stripe client
)

// StripeGateway opens Stripe Checkout sessions. A client is built per call
// because the secret key is stored in the database and can change at runtime.
type StripeGateway struct {
	backends *stripe.Backends // nil uses the live Stripe API
}

// NewStripeGateway returns a gateway against the live Stripe API
func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

// api builds a client for secretKey, refusing an empty key
func (g *StripeGateway) api(secretKey string) (*client.API, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrNotConfigured
	}
	return client.New(secretKey, g.backends), nil // Cheap, holds no connections of its own
}

// CreateSession opens a one-off payment session for the items
func (g *StripeGateway) CreateSession(ctx context.Context, secretKey string, req CheckoutRequest) (*Session, error) {
	sc, err := g.api(secretKey)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx // Cancel with the request
	for _, item := range req.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.ProductName),
		}
		if item.ProductDescription != "" {
			product.Description = stripe.String(item.ProductDescription)
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(strings.ToLower(item.Currency)), // Stripe expects lowercase ISO codes
				UnitAmount:  stripe.Int64(item.PriceInCents),               // Smallest currency unit
				ProductData: product,                                       // Inline product, nothing is created in the catalog
			},
		})
	}
	if len(req.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.AllowedCountries),
		}
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID) // Read back on status checks
	}

	s, err := sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return fromStripe(s), nil
}

// GetSession fetches a session by id
func (g *StripeGateway) GetSession(ctx context.Context, secretKey, id string) (*Session, error) {
	sc, err := g.api(secretKey)
	if err != nil {
		return nil, err
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx // Cancel with the request
	s, err := sc.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return fromStripe(s), nil
}

// fromStripe keeps the fields the site reports, with the raw response when available
func fromStripe(s *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:                s.ID,
		URL:               s.URL,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		ClientReferenceID: s.ClientReferenceID,
	}
	if s.LastResponse != nil && len(s.LastResponse.RawJSON) > 0 {
		out.Raw = string(s.LastResponse.RawJSON) // Exactly what Stripe sent
	} else if raw, err := json.Marshal(s); err == nil {
		out.Raw = string(raw)
	}
	return out
}
