package relevance

import (
	"strings"
)

// minTermLength filters out short tokens that carry little signal
// ("a", "of", "to"). Only terms longer than this take part in term-level
// matching, highlighting and snippet extraction.
const minTermLength = 2

// Tokenize lowercases the query, splits on whitespace, and drops tokens
// of length <= 2.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}
