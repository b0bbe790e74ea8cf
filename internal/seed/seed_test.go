package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

func TestLoad(t *testing.T) {
	dataset, err := Load()
	require.NoError(t, err)

	assert.Len(t, dataset.Categories, 5)
	assert.Equal(t, models.CategoryAll, dataset.Categories[0].ID)
	assert.Equal(t, "admin", dataset.Admin.Username)
	assert.Len(t, dataset.Documents, 5)
	assert.NotEmpty(t, dataset.Activity)
	assert.Len(t, dataset.Analytics.TopSearchTerms, 5)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.NewMemoryStore()

	require.NoError(t, Apply(ctx, s, logger))

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)

	// Counts derive from the seeded documents
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c.ID] = c.Count
	}
	assert.Equal(t, 5, counts[models.CategoryAll])
	assert.Equal(t, 2, counts["technical"])
	assert.Equal(t, 1, counts["finance"])
	assert.Equal(t, 1, counts["product"])
	assert.Equal(t, 1, counts["research"])

	docs, err := s.ListDocuments(ctx, "")
	require.NoError(t, err)
	require.Len(t, docs, 5)
	assert.Equal(t, "Advanced AI Implementation Guide", docs[0].Title)

	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", admin.DisplayName)
	assert.True(t, service.VerifyPassword(admin.PasswordHash, "admin123"))

	analytics, err := s.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, analytics.DocumentsIndexed)
	assert.Equal(t, "0.32s", analytics.AverageQueryTime)
	assert.Len(t, analytics.TopSearchTerms, 5)
	assert.NotEmpty(t, analytics.UsageOverTime)

	entries, err := s.RecentActivity(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}
