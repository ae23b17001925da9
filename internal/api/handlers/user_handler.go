package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/models"
	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

// TokenIssuer issues identity tokens to authenticated users.
type TokenIssuer interface {
	GenerateToken(user models.User) (string, error)
}

// UserHandler handles HTTP requests for authentication and user profiles.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  TokenIssuer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens TokenIssuer) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new user registration and issues an identity token.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Email, password and name are required")
		return
	}

	user, err := h.service.CreateUser(payload.Email, payload.Password, payload.Name)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondServiceError(w, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login handles user authentication and token generation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		respondServiceError(w, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GetMe retrieves the currently authenticated user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	user, err := h.service.GetUserByID(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("User from token not found")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
