package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	t.Run("paid session is completed", func(t *testing.T) {
		status := StatusOf(&Session{ID: "cs_1", PaymentStatus: "paid", ClientReferenceID: "alice", Raw: `{"id":"cs_1"}`})
		require.NotNil(t, status.Completed)
		assert.Nil(t, status.Failed)
		require.NotNil(t, status.Completed.UserPrincipal)
		assert.Equal(t, "alice", *status.Completed.UserPrincipal)
		assert.Equal(t, `{"id":"cs_1"}`, status.Completed.Response)
	})

	t.Run("anonymous paid session has no principal", func(t *testing.T) {
		status := StatusOf(&Session{PaymentStatus: "paid"})
		require.NotNil(t, status.Completed)
		assert.Nil(t, status.Completed.UserPrincipal)
	})

	t.Run("unpaid session failed", func(t *testing.T) {
		status := StatusOf(&Session{Status: "open", PaymentStatus: "unpaid"})
		require.NotNil(t, status.Failed)
		assert.Equal(t, "payment not completed", status.Failed.Error)
	})

	t.Run("expired session failed", func(t *testing.T) {
		status := StatusOf(&Session{Status: "expired", PaymentStatus: "unpaid"})
		require.NotNil(t, status.Failed)
		assert.Equal(t, "session expired", status.Failed.Error)
	})
}

func TestStripeGateway_RequiresKey(t *testing.T) {
	g := NewStripeGateway()
	_, err := g.CreateSession(context.Background(), " ", CheckoutRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = g.GetSession(context.Background(), "", "cs_1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
