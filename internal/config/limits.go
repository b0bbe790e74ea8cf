package config

const (
	// MaxDocumentTitleLength is the maximum length for document titles.
	// Kept short so titles render cleanly in list views.
	MaxDocumentTitleLength = 255

	// MaxDocumentContentLength is the maximum length for document bodies.
	MaxDocumentContentLength = 100_000

	// MaxTagLength is the maximum length for a single tag.
	MaxTagLength = 64

	// MaxTagsPerDocument caps the tag list on a document.
	MaxTagsPerDocument = 20

	// MaxAnalyzeInputLength is how much document text is forwarded to the
	// completion API for analysis and tag generation. Longer inputs are
	// truncated with a trailing ellipsis to stay inside token limits.
	MaxAnalyzeInputLength = 8000

	// MaxCategorizeInputLength is the truncation bound for categorization
	// requests, which need less context than full analysis.
	MaxCategorizeInputLength = 4000

	// DefaultActivityLimit is how many activity entries are returned when
	// the caller does not pass an explicit limit.
	DefaultActivityLimit = 5

	// TopSearchTermsLimit bounds the tracked top-terms list in analytics.
	TopSearchTermsLimit = 5
)
