package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web3_portal/internal/domain"
	"web3_portal/internal/payment"
)

func cart() CheckoutRequest {
	return CheckoutRequest{
		Items: []domain.ShoppingItem{{
			ProductName:  "NFT pack",
			Currency:     "PLN",
			Quantity:     2,
			PriceInCents: 1999,
		}},
		SuccessURL: "https://shop.example.com/success",
		CancelURL:  "https://shop.example.com/cancel",
	}
}

func TestCheckout_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	var configured struct {
		Configured bool `json:"configured"`
	}
	decode(t, s.do(http.MethodGet, "/checkout/configured", nil, ""), &configured)
	assert.False(t, configured.Configured)

	assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodPost, "/checkout/sessions", cart(), "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodGet, "/checkout/sessions/cs_1", nil, "").Code)
	assert.Empty(t, s.gateway.created)
}

func TestCheckout_Configure(t *testing.T) {
	s := newTestServer(t)

	cfg := StripeConfigRequest{SecretKey: "sk_test_1", AllowedCountries: []string{"pl", "DE"}}
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/admin/stripe", cfg, userID).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/admin/stripe", StripeConfigRequest{SecretKey: "sk", AllowedCountries: []string{"POL"}}, adminID).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/admin/stripe", cfg, adminID).Code)

	cfg.SecretKey = "sk_test_2"
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/admin/stripe", cfg, adminID).Code)

	var stored []domain.StripeConfiguration
	require.NoError(t, s.db.Find(&stored).Error)
	require.Len(t, stored, 1, "configuration is a single row")
	assert.Equal(t, "sk_test_2", stored[0].SecretKey)
	assert.Equal(t, []string{"PL", "DE"}, stored[0].AllowedCountries)

	var configured struct {
		Configured bool `json:"configured"`
	}
	decode(t, s.do(http.MethodGet, "/checkout/configured", nil, ""), &configured)
	assert.True(t, configured.Configured)
}

func TestCheckout_CreateSession(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/admin/stripe", StripeConfigRequest{SecretKey: "sk_test_1", AllowedCountries: []string{"PL"}}, adminID).Code)
	s.gateway.session = &payment.Session{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}

	bad := cart()
	bad.Items[0].Quantity = 0
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/checkout/sessions", bad, "").Code)
	bad = cart()
	bad.Items = nil
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/checkout/sessions", bad, "").Code)
	bad = cart()
	bad.SuccessURL = "/relative"
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/checkout/sessions", bad, "").Code)

	w := s.do(http.MethodPost, "/checkout/sessions", cart(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "cs_1", resp.ID)
	assert.Equal(t, "https://checkout.example.com/cs_1", resp.URL)

	require.Len(t, s.gateway.created, 1)
	assert.Equal(t, "sk_test_1", s.gateway.keys[0])
	assert.Empty(t, s.gateway.created[0].ClientReferenceID, "anonymous shopper")
	assert.Equal(t, []string{"PL"}, s.gateway.created[0].AllowedCountries)
	assert.Equal(t, cart().Items, s.gateway.created[0].Items)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/checkout/sessions", cart(), userID).Code)
	assert.Equal(t, userID, s.gateway.created[1].ClientReferenceID)

	s.gateway.err = errors.New("card declined")
	assert.Equal(t, http.StatusBadGateway, s.do(http.MethodPost, "/checkout/sessions", cart(), "").Code)
}

func TestCheckout_SessionStatus(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/admin/stripe", StripeConfigRequest{SecretKey: "sk_test_1"}, adminID).Code)
	s.gateway.sessions["cs_paid"] = &payment.Session{ID: "cs_paid", Status: "complete", PaymentStatus: "paid", ClientReferenceID: userID, Raw: `{"id":"cs_paid"}`}
	s.gateway.sessions["cs_open"] = &payment.Session{ID: "cs_open", Status: "open", PaymentStatus: "unpaid"}

	var status domain.StripeSessionStatus
	w := s.do(http.MethodGet, "/checkout/sessions/cs_paid", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &status)
	require.NotNil(t, status.Completed)
	assert.Nil(t, status.Failed)
	require.NotNil(t, status.Completed.UserPrincipal)
	assert.Equal(t, userID, *status.Completed.UserPrincipal)
	assert.Equal(t, `{"id":"cs_paid"}`, status.Completed.Response)

	status = domain.StripeSessionStatus{}
	decode(t, s.do(http.MethodGet, "/checkout/sessions/cs_open", nil, ""), &status)
	require.NotNil(t, status.Failed)
	assert.Equal(t, "payment not completed", status.Failed.Error)

	status = domain.StripeSessionStatus{}
	decode(t, s.do(http.MethodGet, "/checkout/sessions/cs_missing", nil, ""), &status)
	require.NotNil(t, status.Failed)
	assert.Equal(t, "session not found", status.Failed.Error)
}
