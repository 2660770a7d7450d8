// extraction.go - Shared extraction result type and text normalization

package processor

import (
	"regexp"
	"strings"
)

// ExtractionResult is the output of the optical and document extractors.
// Confidence is a 0-100 scalar; for images it comes from the OCR engine,
// for PDFs it is synthesized from text heuristics. A failed extraction has
// Succeeded=false and empty text, and nothing runs downstream of it.
type ExtractionResult struct {
	Succeeded  bool   `json:"succeeded"`
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
	WordCount  int    `json:"word_count"`
	LineCount  int    `json:"line_count"`
	PageCount  int    `json:"page_count,omitempty"`
}

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t\f\r]+`)
	reBlankLines      = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText collapses extraction whitespace: runs of horizontal
// whitespace become a single space and runs of blank lines are squeezed,
// so downstream regex parsing sees a stable shape.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// newExtractionResult builds a result from cleaned text, clamping
// confidence into [0,100] and computing word/line counts.
func newExtractionResult(text string, confidence, pageCount int) ExtractionResult {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	lineCount := 0
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) != "" {
			lineCount++
		}
	}

	return ExtractionResult{
		Succeeded:  text != "",
		Text:       text,
		Confidence: confidence,
		WordCount:  len(strings.Fields(text)),
		LineCount:  lineCount,
		PageCount:  pageCount,
	}
}
