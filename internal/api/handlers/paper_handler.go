package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/models"
	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/rs/zerolog/log"
)

// maxUploadBytes caps the multipart form size for paper uploads.
const maxUploadBytes = 32 << 20 // 32 MiB

// PaperHandler handles HTTP requests for paper upload and management.
type PaperHandler struct {
	service services.PaperServiceProvider
}

// NewPaperHandler creates a new PaperHandler.
func NewPaperHandler(service services.PaperServiceProvider) *PaperHandler {
	return &PaperHandler{service: service}
}

// GetAll handles the request to list the authenticated user's papers.
func (h *PaperHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	papers, err := h.service.GetPapersForUser(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to retrieve papers")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve papers")
		return
	}
	if papers == nil {
		papers = []models.PaperSummary{}
	}

	respondJSON(w, http.StatusOK, papers)
}

// Upload handles a multipart paper upload and runs the ingestion pipeline.
func (h *PaperHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to read uploaded file")
		respondError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	paper, err := h.service.UploadPaper(r.Context(), claims.UserID, header.Filename, data)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Str("filename", header.Filename).Msg("Paper upload failed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"paper_id": paper.ID,
		"analysis": map[string]*string{
			"summary":       paper.Summary,
			"key_findings":  paper.KeyFindings,
			"methodology":   paper.Methodology,
			"research_gaps": paper.ResearchGaps,
			"future_work":   paper.FutureWork,
		},
	})
}

// Get handles the request to fetch a single paper with its full analysis.
func (h *PaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	paperID := chi.URLParam(r, "id")
	paper, err := h.service.GetPaperByID(claims.UserID, paperID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Str("paper_id", paperID).Msg("Failed to get paper")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, paper)
}

// Delete handles the request to delete a paper and its stored binary.
func (h *PaperHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	paperID := chi.URLParam(r, "id")
	if err := h.service.DeletePaper(claims.UserID, paperID); err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Str("paper_id", paperID).Msg("Failed to delete paper")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Paper deleted successfully"})
}
