package models

// DocumentAnalysis is the structured output of the analyze-document
// endpoint, extracted by the completion model.
type DocumentAnalysis struct {
	Topics           []string `json:"topics"`
	Entities         []string `json:"entities"`
	Summary          string   `json:"summary"`
	Sentiment        string   `json:"sentiment"`
	ReadabilityScore float64  `json:"readabilityScore"`
}

// GeneratedTags is the output of the generate-tags endpoint.
type GeneratedTags struct {
	Tags []string `json:"tags"`
}

// Categorization is the output of the categorize endpoint.
type Categorization struct {
	Category string `json:"category"`
}

// AIStatus reports whether the completion API credential is configured.
type AIStatus struct {
	Status string `json:"status"` // "available" or "unavailable"
}
