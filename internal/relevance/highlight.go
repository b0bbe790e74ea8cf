package relevance

import (
	"regexp"
	"strings"
)

// HighlightMatches wraps every occurrence of a query term (length > 2) in
// <mark> tags. Regex metacharacters in terms are escaped, so queries like
// "c++" are matched literally.
func HighlightMatches(text, query string) string {
	if strings.TrimSpace(query) == "" || text == "" {
		return text
	}

	terms := Tokenize(query)
	if len(terms) == 0 {
		return text
	}

	escaped := make([]string, len(terms))
	for i, term := range terms {
		escaped[i] = regexp.QuoteMeta(term)
	}

	re, err := regexp.Compile("(?i)(" + strings.Join(escaped, "|") + ")")
	if err != nil {
		return text
	}

	return re.ReplaceAllString(text, "<mark>$1</mark>")
}
