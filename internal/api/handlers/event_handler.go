package handlers

import (
	"net/http"
	"strconv"

	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/models"
	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler handles HTTP requests for the account activity log.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to get the authenticated user's recent activity.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	events, err := h.service.GetRecentEventsForUser(claims.UserID, limit)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to retrieve events")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	respondJSON(w, http.StatusOK, events)
}
