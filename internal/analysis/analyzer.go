// Package analysis generates research-paper analyses through an external
// generative-text provider.
package analysis

import (
	"context"
	"fmt"
	"sync"
)

// Kind selects which analysis to generate for a paper.
type Kind string

const (
	KindSummary      Kind = "summary"
	KindKeyFindings  Kind = "key_findings"
	KindMethodology  Kind = "methodology"
	KindResearchGaps Kind = "research_gaps"
	KindFutureWork   Kind = "future_work"
)

// Kinds lists every analysis generated during ingestion.
var Kinds = []Kind{KindSummary, KindKeyFindings, KindMethodology, KindResearchGaps, KindFutureWork}

// maxInputChars bounds how much extracted text is embedded into a prompt.
const maxInputChars = 6000

var promptTemplates = map[Kind]string{
	KindSummary:      "Analyze this research paper and provide a comprehensive summary in 200 words:\n\n%s",
	KindKeyFindings:  "Extract and list 4-5 main findings from this research paper:\n\n%s",
	KindMethodology:  "Describe the research methodology used in this paper:\n\n%s",
	KindResearchGaps: "Identify 3-5 research gaps and limitations in this paper:\n\n%s",
	KindFutureWork:   "Suggest 4-5 specific areas for future research based on this paper:\n\n%s",
}

// BuildPrompt assembles the provider instruction for a given kind, truncating
// the input text to the first 6000 characters. Unknown kinds fall back to the
// summary template.
func BuildPrompt(text string, kind Kind) string {
	if r := []rune(text); len(r) > maxInputChars {
		text = string(r[:maxInputChars])
	}
	tmpl, ok := promptTemplates[kind]
	if !ok {
		tmpl = promptTemplates[KindSummary]
	}
	return fmt.Sprintf(tmpl, text)
}

// Analyzer generates prose for a single analysis kind.
type Analyzer interface {
	Analyze(ctx context.Context, text string, kind Kind) (string, error)
}

// Result holds the five analyses of a paper.
type Result struct {
	Summary      string `json:"summary"`
	KeyFindings  string `json:"key_findings"`
	Methodology  string `json:"methodology"`
	ResearchGaps string `json:"research_gaps"`
	FutureWork   string `json:"future_work"`
}

// Field returns a pointer to the result field for a kind.
func (r *Result) Field(kind Kind) *string {
	switch kind {
	case KindKeyFindings:
		return &r.KeyFindings
	case KindMethodology:
		return &r.Methodology
	case KindResearchGaps:
		return &r.ResearchGaps
	case KindFutureWork:
		return &r.FutureWork
	default:
		return &r.Summary
	}
}

// AnalyzeAll runs every analysis kind against the text. The five calls are
// independent, so they are issued concurrently. A provider failure never fails
// the whole run: the failing field carries an error-describing string so the
// remaining analyses can still be persisted.
func AnalyzeAll(ctx context.Context, a Analyzer, text string) Result {
	var result Result
	var wg sync.WaitGroup

	for _, kind := range Kinds {
		wg.Add(1)
		go func(kind Kind) {
			defer wg.Done()
			out, err := a.Analyze(ctx, text, kind)
			if err != nil {
				out = fmt.Sprintf("Error: %s", err)
			}
			*result.Field(kind) = out
		}(kind)
	}

	wg.Wait()
	return result
}
