package models

import (
	"time"
)

// SearchTerm is one entry in the bounded top-search-terms list.
type SearchTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Analytics is the singleton usage-counters row. It is mutated on every
// document creation and every search.
type Analytics struct {
	ID                int          `json:"id"`
	DocumentsIndexed  int          `json:"documentsIndexed"`
	SearchesPerformed int          `json:"searchesPerformed"`
	AverageQueryTime  string       `json:"averageQueryTime"`
	TopSearchTerms    []SearchTerm `json:"topSearchTerms"`
	UsageOverTime     []int        `json:"usageOverTime"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// AnalyticsUpdate is a partial merge into the analytics singleton; nil
// fields are left unchanged.
type AnalyticsUpdate struct {
	DocumentsIndexed  *int
	SearchesPerformed *int
	AverageQueryTime  *string
	TopSearchTerms    []SearchTerm
	UsageOverTime     []int
}
