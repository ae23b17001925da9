// Package pdf provides best-effort text extraction from PDF documents.
//
// It uses ledongthuc/pdf, a pure Go implementation with no CGO requirement.
package pdf

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// Extractor pulls the text layer out of PDF binaries.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the concatenated text of every page, joined with newlines.
// Pages that yield no text are skipped. On an unrecoverable parse failure it
// returns an empty string rather than an error; callers must treat empty or
// very short output as an unusable document.
func (e *Extractor) Extract(data []byte) (out string) {
	defer func() {
		// The underlying parser can panic on malformed documents.
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("PDF parser panicked, treating document as unreadable")
			out = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open PDF")
		return ""
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages are image-only or corrupt; skip them.
			continue
		}
		if pageText == "" {
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String()
}
