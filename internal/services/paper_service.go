package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/paperdeck-be/internal/analysis"
	"github.com/isdelr/paperdeck-be/internal/models"
	"github.com/rs/zerolog/log"
)

// FreeTierPaperLimit is the maximum number of papers a non-premium user may hold.
const FreeTierPaperLimit = 3

// minExtractedChars is the heuristic minimum text length for a usable PDF.
const minExtractedChars = 100

// listSummaryLimit caps the summary length in the papers list view.
const listSummaryLimit = 200

// TextExtractor pulls the text layer out of a PDF binary. An unreadable
// document yields an empty string.
type TextExtractor interface {
	Extract(data []byte) string
}

// PaperServiceProvider defines the interface for paper services.
type PaperServiceProvider interface {
	CanUpload(user models.User) (bool, error)
	UploadPaper(ctx context.Context, userID, filename string, data []byte) (models.Paper, error)
	GetPapersForUser(userID string) ([]models.PaperSummary, error)
	GetPaperByID(userID, paperID string) (models.Paper, error)
	DeletePaper(userID, paperID string) error
	CountPapersForUser(userID string) (int, error)
}

// PaperService orchestrates the paper ingestion pipeline and paper CRUD.
type PaperService struct {
	db           *sql.DB
	userService  UserServiceProvider
	eventService EventServiceProvider
	extractor    TextExtractor
	analyzer     analysis.Analyzer
	uploadDir    string
}

// NewPaperService creates a new PaperService.
func NewPaperService(db *sql.DB, userService UserServiceProvider, eventService EventServiceProvider, extractor TextExtractor, analyzer analysis.Analyzer, uploadDir string) *PaperService {
	return &PaperService{
		db:           db,
		userService:  userService,
		eventService: eventService,
		extractor:    extractor,
		analyzer:     analyzer,
		uploadDir:    uploadDir,
	}
}

// CanUpload decides whether a user may upload another paper. Non-premium
// users are capped at FreeTierPaperLimit papers; premium users are uncapped.
// The count is read fresh on every call.
func (s *PaperService) CanUpload(user models.User) (bool, error) {
	if user.IsPremium {
		return true, nil
	}
	count, err := s.CountPapersForUser(user.ID)
	if err != nil {
		return false, err
	}
	return count < FreeTierPaperLimit, nil
}

// UploadPaper runs the ingestion pipeline: user load, quota check, upload
// validation, binary persistence, text extraction, the five analyses, and the
// paper row insert. Authorization failures (missing user, exhausted quota)
// are reported before the upload itself is inspected.
func (s *PaperService) UploadPaper(ctx context.Context, userID, filename string, data []byte) (models.Paper, error) {
	user, err := s.userService.GetUserByID(userID)
	if err != nil {
		return models.Paper{}, err
	}

	allowed, err := s.CanUpload(user)
	if err != nil {
		return models.Paper{}, fmt.Errorf("failed to evaluate upload quota: %w", err)
	}
	if !allowed {
		return models.Paper{}, ErrQuotaExceeded
	}

	if err := validateUpload(filename); err != nil {
		return models.Paper{}, err
	}

	filename = filepath.Base(filename)
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return models.Paper{}, fmt.Errorf("could not create upload directory: %w", err)
	}

	// Second-resolution timestamp plus user id keeps concurrent uploads from
	// different users apart. Two uploads by the same user within the same
	// second can still collide.
	storedName := fmt.Sprintf("%s_%d_%s", userID, time.Now().Unix(), filename)
	storedPath := filepath.Join(s.uploadDir, storedName)

	if err := os.WriteFile(storedPath, data, 0644); err != nil {
		return models.Paper{}, fmt.Errorf("could not save uploaded file: %w", err)
	}

	text := s.extractor.Extract(data)
	if len(text) < minExtractedChars {
		// The saved binary is useless without a text layer; remove it rather
		// than leaving an orphan behind.
		if err := os.Remove(storedPath); err != nil {
			log.Warn().Err(err).Str("path", storedPath).Msg("Could not remove unreadable upload")
		}
		return models.Paper{}, ErrExtractionFailed
	}

	result := analysis.AnalyzeAll(ctx, s.analyzer, text)

	paper := models.Paper{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        deriveTitle(filename),
		Filename:     filename,
		Filepath:     storedPath,
		Summary:      &result.Summary,
		KeyFindings:  &result.KeyFindings,
		Methodology:  &result.Methodology,
		ResearchGaps: &result.ResearchGaps,
		FutureWork:   &result.FutureWork,
		UploadedAt:   time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO papers (id, user_id, title, filename, filepath, summary, key_findings, methodology, research_gaps, future_work, uploaded_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		os.Remove(storedPath)
		return models.Paper{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(paper.ID, paper.UserID, paper.Title, paper.Filename, paper.Filepath, paper.Summary, paper.KeyFindings, paper.Methodology, paper.ResearchGaps, paper.FutureWork, paper.UploadedAt)
	if err != nil {
		os.Remove(storedPath)
		return models.Paper{}, err
	}

	s.eventService.CreateEvent("paper.upload", "info", fmt.Sprintf("Paper '%s' uploaded and analyzed.", paper.Title), &userID)

	return paper, nil
}

// GetPapersForUser retrieves a user's papers ordered by upload time, newest
// first, with list-view summaries truncated to 200 characters.
func (s *PaperService) GetPapersForUser(userID string) ([]models.PaperSummary, error) {
	rows, err := s.db.Query("SELECT id, title, filename, summary, uploaded_at FROM papers WHERE user_id = ? ORDER BY uploaded_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []models.PaperSummary
	for rows.Next() {
		var paper models.PaperSummary
		if err := rows.Scan(&paper.ID, &paper.Title, &paper.Filename, &paper.Summary, &paper.UploadedAt); err != nil {
			return nil, err
		}
		if paper.Summary != nil {
			if r := []rune(*paper.Summary); len(r) > listSummaryLimit {
				truncated := string(r[:listSummaryLimit]) + "..."
				paper.Summary = &truncated
			}
		}
		papers = append(papers, paper)
	}
	return papers, rows.Err()
}

// GetPaperByID retrieves a single paper owned by the given user. A paper that
// belongs to someone else is indistinguishable from a missing one.
func (s *PaperService) GetPaperByID(userID, paperID string) (models.Paper, error) {
	var paper models.Paper
	row := s.db.QueryRow("SELECT id, user_id, title, filename, filepath, summary, key_findings, methodology, research_gaps, future_work, uploaded_at FROM papers WHERE id = ? AND user_id = ?", paperID, userID)
	err := row.Scan(&paper.ID, &paper.UserID, &paper.Title, &paper.Filename, &paper.Filepath, &paper.Summary, &paper.KeyFindings, &paper.Methodology, &paper.ResearchGaps, &paper.FutureWork, &paper.UploadedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Paper{}, fmt.Errorf("paper %s: %w", paperID, ErrNotFound)
		}
		return models.Paper{}, err
	}
	return paper, nil
}

// DeletePaper removes a paper's stored binary and its database row.
func (s *PaperService) DeletePaper(userID, paperID string) error {
	paper, err := s.GetPaperByID(userID, paperID)
	if err != nil {
		return err
	}

	if err := os.Remove(paper.Filepath); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", paper.Filepath).Msg("Could not delete paper file")
	}

	_, err = s.db.Exec("DELETE FROM papers WHERE id = ? AND user_id = ?", paperID, userID)
	if err == nil {
		s.eventService.CreateEvent("paper.delete", "info", fmt.Sprintf("Paper '%s' deleted.", paper.Title), &userID)
	}
	return err
}

// CountPapersForUser returns how many papers a user currently holds.
func (s *PaperService) CountPapersForUser(userID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM papers WHERE user_id = ?", userID).Scan(&count)
	return count, err
}

// validateUpload rejects uploads with an empty filename or a non-PDF
// extension.
func validateUpload(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: no file selected", ErrInvalidInput)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return fmt.Errorf("%w: only PDF files are allowed", ErrInvalidInput)
	}
	return nil
}

// deriveTitle strips a trailing .pdf extension, in any casing, from a filename.
func deriveTitle(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return filename[:len(filename)-len(".pdf")]
	}
	return filename
}
