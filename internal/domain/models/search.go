package models

// SearchResult is the response shape of the keyword search path.
type SearchResult struct {
	Results []DocumentWithRelevance `json:"results"`
	Took    int64                   `json:"took"` // milliseconds
}

// SemanticSearchResult is the response shape of the AI-assisted search
// path. Reasoning is the model's explanation of its ranking; it is empty
// when the local fallback scorer produced the ranking.
type SemanticSearchResult struct {
	Results   []DocumentWithRelevance `json:"results"`
	Took      int64                   `json:"took"`
	Reasoning string                  `json:"reasoning,omitempty"`
}
