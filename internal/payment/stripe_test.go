package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"web3_portal/internal/domain"
)

const sessionJSON = `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1","status":"complete","payment_status":"paid","client_reference_id":"alice"}`

// newTestGateway points the gateway at a local fake of the Stripe API
func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return &StripeGateway{backends: &stripe.Backends{API: backend, Connect: backend, Uploads: backend}}
}

func TestStripeGateway_CreateSession(t *testing.T) {
	var (
		path string
		form url.Values
		auth string
	)
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionJSON))
	})

	s, err := g.CreateSession(context.Background(), "sk_test_1", CheckoutRequest{
		Items: []domain.ShoppingItem{{
			ProductName:  "NFT pack",
			Currency:     "PLN",
			Quantity:     2,
			PriceInCents: 1999,
		}},
		SuccessURL:        "https://shop.example.com/success",
		CancelURL:         "https://shop.example.com/cancel",
		AllowedCountries:  []string{"PL", "DE"},
		ClientReferenceID: "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/checkout/sessions", path)
	assert.Equal(t, "Bearer sk_test_1", auth)
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "alice", form.Get("client_reference_id"))
	assert.Equal(t, "pln", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "1999", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "NFT pack", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "DE", form.Get("shipping_address_collection[allowed_countries][1]"))

	assert.Equal(t, "cs_test_1", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", s.URL)
	assert.True(t, s.Paid())
	assert.JSONEq(t, sessionJSON, s.Raw)
}

func TestStripeGateway_GetSession(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/v1/checkout/sessions/cs_test_1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such checkout.session"}}`))
			return
		}
		_, _ = w.Write([]byte(sessionJSON))
	})

	s, err := g.GetSession(context.Background(), "sk_test_1", "cs_test_1")
	require.NoError(t, err)
	status := StatusOf(s)
	require.NotNil(t, status.Completed)
	assert.Equal(t, "alice", *status.Completed.UserPrincipal)

	_, err = g.GetSession(context.Background(), "sk_test_1", "cs_missing")
	assert.Error(t, err)
}
