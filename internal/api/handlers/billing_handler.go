package handlers

import (
	"net/http"

	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/payments"
	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

// BillingHandler handles HTTP requests for subscription checkout.
type BillingHandler struct {
	userService services.UserServiceProvider
	checkout    payments.CheckoutProvider
	events      services.EventServiceProvider
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(userService services.UserServiceProvider, checkout payments.CheckoutProvider, events services.EventServiceProvider) *BillingHandler {
	return &BillingHandler{userService: userService, checkout: checkout, events: events}
}

// CreateCheckoutSession creates a hosted checkout session for the premium
// subscription and returns its redirect URL.
func (h *BillingHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Checkout requested for unknown user")
		respondServiceError(w, err)
		return
	}

	url, err := h.checkout.CreateCheckoutSession(r.Context(), user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create checkout session")
		respondError(w, http.StatusBadRequest, "Failed to create checkout session")
		return
	}

	h.events.CreateEvent("billing.checkout", "info", "Checkout session created.", &user.ID)

	respondJSON(w, http.StatusOK, map[string]string{"checkout_url": url})
}
