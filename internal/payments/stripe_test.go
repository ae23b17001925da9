package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStripeClient(t *testing.T, handler http.HandlerFunc) *StripeClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewStripeClient("sk_test_123", "price_123", "http://localhost:3000/success", "http://localhost:3000/pricing", 5*time.Second)
	client.baseURL = srv.URL
	return client
}

func TestStripeClient_CreateCheckoutSession(t *testing.T) {
	client := newTestStripeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("customer_email"))
		assert.Equal(t, "price_123", r.PostForm.Get("line_items[0][price]"))
		assert.Equal(t, "subscription", r.PostForm.Get("mode"))
		assert.Equal(t, "u1", r.PostForm.Get("metadata[user_id]"))

		w.Write([]byte(`{"url":"https://checkout.stripe.com/c/pay/cs_test"}`))
	})

	url, err := client.CreateCheckoutSession(context.Background(), "u1", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", url)
}

func TestStripeClient_CreateCheckoutSession_ProviderError(t *testing.T) {
	client := newTestStripeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"No such price"}}`))
	})

	_, err := client.CreateCheckoutSession(context.Background(), "u1", "user@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")
}

func TestStripeClient_CreateCheckoutSession_MissingURL(t *testing.T) {
	client := newTestStripeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.CreateCheckoutSession(context.Background(), "u1", "user@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checkout URL")
}
