package models

import "time"

// Paper represents an uploaded and analyzed research paper.
// Analysis fields are filled once during ingestion and never updated afterwards.
type Paper struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	Title        string    `json:"title"`
	Filename     string    `json:"filename"`
	Filepath     string    `json:"-"` // Internal use, not exposed to client
	Summary      *string   `json:"summary,omitempty"`
	KeyFindings  *string   `json:"key_findings,omitempty"`
	Methodology  *string   `json:"methodology,omitempty"`
	ResearchGaps *string   `json:"research_gaps,omitempty"`
	FutureWork   *string   `json:"future_work,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// PaperSummary is the trimmed-down list view of a paper. The summary is
// truncated to 200 characters; the full text is available on the detail view.
type PaperSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	Summary    *string   `json:"summary,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}
