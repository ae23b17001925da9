package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/paperdeck-be/internal/services"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body. Only the short message reaches the
// client; details stay in the server logs.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// serviceErrorStatus maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a server error.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrQuotaExceeded):
		return http.StatusForbidden
	case errors.Is(err, services.ErrExtractionFailed):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps err to a status and writes the matching JSON error.
// Internal errors are masked with a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	status := serviceErrorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	respondError(w, status, msg)
}
