package services

import (
	"regexp"
	"strings"
)

var (
	// Lines like "Page 12" or "page 3 of 40" that PDF extraction leaves behind.
	rePageNumber = regexp.MustCompile(`(?im)^\s*page[^\p{L}\n]*\d+.*$`)
	// Lines made only of digits, punctuation or whitespace.
	reNoiseLine = regexp.MustCompile(`(?m)^[\d\p{P}\p{S} \t]+$`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
)

// PreCleanText strips common PDF-extraction artifacts (page-number lines,
// bare number/symbol lines, runs of blank lines) before the text is handed
// to the model.
func PreCleanText(text string) string {
	cleaned := rePageNumber.ReplaceAllString(text, "")
	cleaned = reNoiseLine.ReplaceAllString(cleaned, "")
	cleaned = reBlankRuns.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
