package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/relevance"
)

// MemoryStore is the in-memory Store implementation. A single RWMutex
// guards all state, so category counters and analytics stay consistent
// under concurrent mutation. The count of the synthetic "all" category is
// derived from the document map at read time rather than kept as an
// independently mutated counter.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[int]*models.User
	documents  map[int]*models.Document
	categories map[string]*models.Category
	// categoryOrder preserves registration order for listing
	categoryOrder []string
	activity      []*models.ActivityLog
	analytics     *models.Analytics

	userIDCounter     int
	documentIDCounter int
	activityIDCounter int
}

// NewMemoryStore creates an empty store with an initialized analytics
// singleton. Categories, users and documents are registered by the seed
// package or by API calls.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int]*models.User),
		documents:  make(map[int]*models.Document),
		categories: make(map[string]*models.Category),
		analytics: &models.Analytics{
			ID:               1,
			AverageQueryTime: "0s",
			TopSearchTerms:   []models.SearchTerm{},
			UsageOverTime:    []int{},
			UpdatedAt:        time.Now(),
		},
		userIDCounter:     1,
		documentIDCounter: 1,
		activityIDCounter: 1,
	}
}

var _ Store = (*MemoryStore)(nil)

// User operations

func (s *MemoryStore) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %d not found", id)}
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %q not found", username)}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("username %q is taken", user.Username)}
		}
	}

	stored := *user
	stored.ID = s.userIDCounter
	s.userIDCounter++
	s.users[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

// Document operations

func (s *MemoryStore) GetDocument(_ context.Context, id int) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("document %d not found", id)}
	}
	copied := copyDocument(doc)
	return &copied, nil
}

// ListDocuments returns all documents, or those in categoryID when it is
// neither empty nor the reserved "all" value. Results are ordered by id.
func (s *MemoryStore) ListDocuments(_ context.Context, categoryID string) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listDocumentsLocked(categoryID), nil
}

func (s *MemoryStore) listDocumentsLocked(categoryID string) []models.Document {
	docs := make([]models.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		if categoryID != "" && categoryID != models.CategoryAll && doc.CategoryID != categoryID {
			continue
		}
		docs = append(docs, copyDocument(doc))
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

func (s *MemoryStore) CreateDocument(_ context.Context, doc *models.Document) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := copyDocument(doc)
	stored.ID = s.documentIDCounter
	s.documentIDCounter++
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Embedding = nil
	if stored.Tags == nil {
		stored.Tags = []string{}
	}

	s.documents[stored.ID] = &stored
	s.adjustCategoryCountLocked(stored.CategoryID, 1)
	s.analytics.DocumentsIndexed++

	copied := copyDocument(&stored)
	return &copied, nil
}

func (s *MemoryStore) UpdateDocument(_ context.Context, id int, upd DocumentUpdate) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("document %d not found", id)}
	}

	// Moving between categories adjusts both counters; the "all" total
	// is derived, so a move never changes it.
	if upd.CategoryID != nil && *upd.CategoryID != doc.CategoryID {
		s.adjustCategoryCountLocked(doc.CategoryID, -1)
		s.adjustCategoryCountLocked(*upd.CategoryID, 1)
		doc.CategoryID = *upd.CategoryID
	}

	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
	}
	if upd.Preview != nil {
		doc.Preview = *upd.Preview
	}
	if upd.Tags != nil {
		doc.Tags = append([]string{}, (*upd.Tags)...)
	}
	if upd.UserID != nil {
		doc.UserID = *upd.UserID
	}
	doc.UpdatedAt = time.Now()

	copied := copyDocument(doc)
	return &copied, nil
}

func (s *MemoryStore) DeleteDocument(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("document %d not found", id)}
	}

	s.adjustCategoryCountLocked(doc.CategoryID, -1)
	delete(s.documents, id)
	return nil
}

// SearchDocuments runs the keyword relevance pipeline over all documents
// and records the search in analytics: the searches-performed counter,
// the trailing usage bucket, and the bounded top-terms list.
func (s *MemoryStore) SearchDocuments(_ context.Context, query string) (*models.SearchResult, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.listDocumentsLocked("")
	results := relevance.RankKeyword(docs, query)

	s.incrementSearchCountLocked()
	s.trackSearchTermLocked(query)

	return &models.SearchResult{
		Results: results,
		Took:    time.Since(start).Milliseconds(),
	}, nil
}

// trackSearchTermLocked merges the query into the top-terms list:
// case-insensitive match increments an existing entry, otherwise the term
// is added with count 1. The list stays sorted descending by count and
// bounded to the top five.
func (s *MemoryStore) trackSearchTermLocked(query string) {
	terms := s.analytics.TopSearchTerms

	found := false
	for i := range terms {
		if strings.EqualFold(terms[i].Term, query) {
			terms[i].Count++
			found = true
			break
		}
	}
	if !found {
		terms = append(terms, models.SearchTerm{Term: query, Count: 1})
	}

	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Count > terms[j].Count })
	if len(terms) > config.TopSearchTermsLimit {
		terms = terms[:config.TopSearchTermsLimit]
	}
	s.analytics.TopSearchTerms = terms
}

func (s *MemoryStore) incrementSearchCountLocked() {
	s.analytics.SearchesPerformed++
	if n := len(s.analytics.UsageOverTime); n > 0 {
		s.analytics.UsageOverTime[n-1]++
	}
}

// Category operations

func (s *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		categories = append(categories, s.categoryLocked(id))
	}
	return categories, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.categories[id]; !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("category %q not found", id)}
	}
	copied := s.categoryLocked(id)
	return &copied, nil
}

func (s *MemoryStore) CreateCategory(_ context.Context, category models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		s.categoryOrder = append(s.categoryOrder, category.ID)
	}
	stored := category
	s.categories[category.ID] = &stored

	copied := stored
	return &copied, nil
}

// categoryLocked renders a category by value; the "all" count is computed
// from the document map so it can never drift.
func (s *MemoryStore) categoryLocked(id string) models.Category {
	category := *s.categories[id]
	if id == models.CategoryAll {
		category.Count = len(s.documents)
	}
	return category
}

// adjustCategoryCountLocked applies a +1/-1 delta to a category counter,
// clamped at zero. Unknown categories are ignored, matching the soft
// failure semantics of the rest of the store.
func (s *MemoryStore) adjustCategoryCountLocked(id string, delta int) {
	category, ok := s.categories[id]
	if !ok || id == models.CategoryAll {
		return
	}

	category.Count += delta
	if category.Count < 0 {
		category.Count = 0
	}
}

// Activity log operations

func (s *MemoryStore) AppendActivity(_ context.Context, entry *models.ActivityLog) (*models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	stored.ID = s.activityIDCounter
	s.activityIDCounter++
	stored.CreatedAt = time.Now()

	s.activity = append(s.activity, &stored)

	copied := stored
	return &copied, nil
}

// RecentActivity returns the most recent entries, newest first, rendered
// with relative-time strings computed at read time. limit <= 0 falls back
// to the default of five.
func (s *MemoryStore) RecentActivity(_ context.Context, limit int) ([]models.FormattedActivityLog, error) {
	if limit <= 0 {
		limit = config.DefaultActivityLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.ActivityLog, len(s.activity))
	copy(entries, s.activity)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	now := time.Now()
	formatted := make([]models.FormattedActivityLog, 0, len(entries))
	for _, entry := range entries {
		formatted = append(formatted, models.FormattedActivityLog{
			ID:       entry.ID,
			Type:     entry.Type,
			User:     entry.Details.User,
			Document: entry.Details.Document,
			Query:    entry.Details.Query,
			Message:  entry.Details.Message,
			Time:     timeAgo(entry.CreatedAt, now),
		})
	}
	return formatted, nil
}

// Analytics operations

func (s *MemoryStore) GetAnalytics(_ context.Context) (*models.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.analytics == nil {
		return nil, &domain.NotFoundError{Message: "analytics not initialized"}
	}
	return copyAnalytics(s.analytics), nil
}

func (s *MemoryStore) UpdateAnalytics(_ context.Context, upd models.AnalyticsUpdate) (*models.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analytics == nil {
		return nil, &domain.NotFoundError{Message: "analytics not initialized"}
	}

	if upd.DocumentsIndexed != nil {
		s.analytics.DocumentsIndexed = *upd.DocumentsIndexed
	}
	if upd.SearchesPerformed != nil {
		s.analytics.SearchesPerformed = *upd.SearchesPerformed
	}
	if upd.AverageQueryTime != nil {
		s.analytics.AverageQueryTime = *upd.AverageQueryTime
	}
	if upd.TopSearchTerms != nil {
		s.analytics.TopSearchTerms = append([]models.SearchTerm{}, upd.TopSearchTerms...)
	}
	if upd.UsageOverTime != nil {
		s.analytics.UsageOverTime = append([]int{}, upd.UsageOverTime...)
	}
	s.analytics.UpdatedAt = time.Now()

	return copyAnalytics(s.analytics), nil
}

// copy helpers keep all cross-boundary exchange by value

func copyDocument(doc *models.Document) models.Document {
	copied := *doc
	copied.Tags = append([]string{}, doc.Tags...)
	if doc.Embedding != nil {
		embedding := *doc.Embedding
		copied.Embedding = &embedding
	}
	return copied
}

func copyAnalytics(a *models.Analytics) *models.Analytics {
	copied := *a
	copied.TopSearchTerms = append([]models.SearchTerm{}, a.TopSearchTerms...)
	copied.UsageOverTime = append([]int{}, a.UsageOverTime...)
	return &copied
}
