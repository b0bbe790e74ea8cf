package models

import (
	"time"
)

type Document struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Preview    string    `json:"preview"`
	CategoryID string    `json:"categoryId"`
	Tags       []string  `json:"tags"` // never nil, empty slice when untagged
	UserID     int       `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Embedding  *string   `json:"embedding"` // placeholder, unused
}

// DocumentWithRelevance is a document annotated with a search score.
type DocumentWithRelevance struct {
	Document
	Relevance float64 `json:"relevance"`
}
