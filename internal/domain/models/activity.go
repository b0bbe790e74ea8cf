package models

import (
	"time"
)

// ActivityType enumerates the events recorded in the activity log.
type ActivityType string

const (
	ActivityDocumentAdded    ActivityType = "document_added"
	ActivityDocumentUpdated  ActivityType = "document_updated"
	ActivityDocumentAccessed ActivityType = "document_accessed"
	ActivityDocumentDeleted  ActivityType = "document_deleted"
	ActivitySearch           ActivityType = "search"
	ActivitySystem           ActivityType = "system"
)

// ActivityDetails carries the event-specific payload. Which fields are set
// depends on the event type: document events carry User and Document,
// searches carry User and Query, system events carry Message.
type ActivityDetails struct {
	User     string `json:"user,omitempty"`
	Document string `json:"document,omitempty"`
	Query    string `json:"query,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ActivityLog is an append-only record of a user or system action.
// Entries are never mutated or deleted after creation.
type ActivityLog struct {
	ID         int             `json:"id"`
	Type       ActivityType    `json:"type"`
	UserID     *int            `json:"userId,omitempty"`
	DocumentID *int            `json:"documentId,omitempty"`
	Details    ActivityDetails `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FormattedActivityLog is the read-side rendering of an activity entry:
// the absolute timestamp is replaced with a relative-time string computed
// at read time, and detail fields are surfaced per event type.
type FormattedActivityLog struct {
	ID       int          `json:"id"`
	Type     ActivityType `json:"type"`
	User     string       `json:"user,omitempty"`
	Document string       `json:"document,omitempty"`
	Query    string       `json:"query,omitempty"`
	Message  string       `json:"message,omitempty"`
	Time     string       `json:"time"`
}
