package relevance

import (
	"strings"
)

// DefaultSnippetLength is the window size used when callers pass
// maxLength <= 0.
const DefaultSnippetLength = 200

// wordBoundaryLookback bounds how far left the snippet start may shift to
// land on a word boundary.
const wordBoundaryLookback = 20

// ExtractSnippet returns a bounded-length window of text centered on the
// earliest occurrence of any query term, adjusted left to the nearest
// preceding word boundary (within 20 characters) and annotated with
// leading/trailing ellipses when truncated. When no term matches, the
// head of the text is returned.
func ExtractSnippet(text, query string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultSnippetLength
	}
	if strings.TrimSpace(query) == "" || text == "" {
		return head(text, maxLength)
	}

	terms := Tokenize(query)
	if len(terms) == 0 {
		return head(text, maxLength)
	}

	// Find the earliest occurrence of any term
	textLower := strings.ToLower(text)
	bestPos := -1
	bestTerm := ""
	for _, term := range terms {
		if pos := strings.Index(textLower, term); pos != -1 && (bestPos == -1 || pos < bestPos) {
			bestPos = pos
			bestTerm = term
		}
	}

	if bestPos == -1 {
		return head(text, maxLength)
	}

	// Center the match in the window
	start := bestPos - (maxLength-len(bestTerm))/2
	if start < 0 {
		start = 0
	}
	end := start + maxLength
	if end > len(text) {
		end = len(text)
	}

	// Pull the start back to a word boundary when one is close enough
	if start > 0 {
		if prevSpace := strings.LastIndex(text[:start], " "); prevSpace != -1 && start-prevSpace < wordBoundaryLookback {
			start = prevSpace + 1
		}
	}

	snippet := text[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet += "..."
	}
	return snippet
}

func head(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}
