// Package store holds the process-lifetime, in-memory state of the
// repository: documents, categories, activity logs, analytics and users.
// All values cross the store boundary by copy; callers never share
// identity with the store's internal maps.
package store

import (
	"context"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

// DocumentUpdate is a partial document update; nil fields are left
// unchanged.
type DocumentUpdate struct {
	Title      *string
	Content    *string
	Preview    *string
	CategoryID *string
	Tags       *[]string
	UserID     *int
}

// Store is the authoritative holder of all repository state.
type Store interface {
	// User operations
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// Document operations
	GetDocument(ctx context.Context, id int) (*models.Document, error)
	ListDocuments(ctx context.Context, categoryID string) ([]models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	UpdateDocument(ctx context.Context, id int, upd DocumentUpdate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int) error
	SearchDocuments(ctx context.Context, query string) (*models.SearchResult, error)

	// Category operations
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)

	// Activity log operations
	AppendActivity(ctx context.Context, entry *models.ActivityLog) (*models.ActivityLog, error)
	RecentActivity(ctx context.Context, limit int) ([]models.FormattedActivityLog, error)

	// Analytics operations
	GetAnalytics(ctx context.Context) (*models.Analytics, error)
	UpdateAnalytics(ctx context.Context, upd models.AnalyticsUpdate) (*models.Analytics, error)
}
