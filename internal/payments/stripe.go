// Package payments creates hosted checkout sessions for subscription upgrades
// through the Stripe REST API.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// CheckoutProvider creates a hosted checkout session for a user and returns
// the URL the client should redirect to.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, userID, email string) (string, error)
}

// StripeClient implements CheckoutProvider against the Stripe API.
type StripeClient struct {
	apiKey     string
	priceID    string
	successURL string
	cancelURL  string
	baseURL    string
	httpClient *http.Client
}

// NewStripeClient creates a Stripe-backed checkout provider.
func NewStripeClient(apiKey, priceID, successURL, cancelURL string, timeout time.Duration) *StripeClient {
	return &StripeClient{
		apiKey:     apiKey,
		priceID:    priceID,
		successURL: successURL,
		cancelURL:  cancelURL,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkoutSession struct {
	URL   string `json:"url"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession creates a subscription-mode checkout session.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	form := url.Values{}
	form.Set("customer_email", email)
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price]", c.priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "subscription")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("metadata[user_id]", userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var session checkoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("unexpected provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if session.Error != nil {
			return "", fmt.Errorf("payment provider error: %s", session.Error.Message)
		}
		return "", fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}
	if session.URL == "" {
		return "", fmt.Errorf("payment provider returned no checkout URL")
	}
	return session.URL, nil
}
