package relevance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

func TestFallbackScorerScore(t *testing.T) {
	var scorer FallbackScorer
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("query with only short terms returns the default", func(t *testing.T) {
		doc := models.Document{Title: "Vector Database Architecture"}
		assert.InDelta(t, 0.5, scorer.Score(&doc, "a of to", now), 1e-9)
	})

	t.Run("title phrase match", func(t *testing.T) {
		doc := models.Document{Title: "Vector Databases", Content: "unrelated body"}
		assert.InDelta(t, 0.6, scorer.Score(&doc, "vector", now), 1e-9)
	})

	t.Run("partial title terms earn a fraction", func(t *testing.T) {
		doc := models.Document{Title: "Vector Store", Content: "unrelated body"}
		// 1 of 2 terms in the title: 0.4 * 1/2
		assert.InDelta(t, 0.2, scorer.Score(&doc, "vector index", now), 1e-9)
	})

	t.Run("content phrase match", func(t *testing.T) {
		doc := models.Document{Title: "Untitled notes", Content: "Deep dive into vector search internals."}
		assert.InDelta(t, 0.3, scorer.Score(&doc, "vector search", now), 1e-9)
	})

	t.Run("preview substitutes for empty content", func(t *testing.T) {
		doc := models.Document{Title: "Untitled notes", Preview: "Deep dive into vector search internals."}
		assert.InDelta(t, 0.3, scorer.Score(&doc, "vector search", now), 1e-9)
	})

	t.Run("tag containment is bidirectional", func(t *testing.T) {
		doc := models.Document{
			Title:   "Untitled notes",
			Content: "nothing relevant",
			Tags:    []string{"databases"},
		}
		// the term "database" is contained in the tag "databases"
		assert.InDelta(t, 0.2, scorer.Score(&doc, "database", now), 1e-9)
	})

	t.Run("category id inside the query", func(t *testing.T) {
		doc := models.Document{
			Title:      "Untitled notes",
			Content:    "nothing relevant",
			CategoryID: "finance",
			UpdatedAt:  now,
		}
		// 0.1 category + full 0.05 recency bonus
		assert.InDelta(t, 0.15, scorer.Score(&doc, "finance summary", now), 1e-9)
	})

	t.Run("recency bonus decays linearly", func(t *testing.T) {
		doc := models.Document{
			Title:     "Vector Databases",
			Content:   "unrelated body",
			UpdatedAt: now.Add(-15 * 24 * time.Hour),
		}
		// 0.6 title + 0.05 * (1 - 15/30)
		assert.InDelta(t, 0.625, scorer.Score(&doc, "vector", now), 1e-9)
	})

	t.Run("no recency bonus past the window", func(t *testing.T) {
		doc := models.Document{
			Title:     "Vector Databases",
			Content:   "unrelated body",
			UpdatedAt: now.Add(-45 * 24 * time.Hour),
		}
		assert.InDelta(t, 0.6, scorer.Score(&doc, "vector", now), 1e-9)
	})

	t.Run("nothing matches clamps to the floor", func(t *testing.T) {
		doc := models.Document{Title: "Untitled notes", Content: "nothing relevant"}
		assert.InDelta(t, 0.1, scorer.Score(&doc, "kubernetes", now), 1e-9)
	})

	t.Run("everything matches clamps to the ceiling", func(t *testing.T) {
		doc := models.Document{
			Title:      "Vector Database Architecture",
			Content:    "Guide to vector database design.",
			Tags:       []string{"vector", "database"},
			CategoryID: "technical",
			UpdatedAt:  now,
		}
		// 0.6 + 0.3 + 0.2 + 0.05 exceeds the ceiling
		assert.InDelta(t, 0.99, scorer.Score(&doc, "vector database technical", now), 1e-9)
	})
}

func TestRankFallback(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	docs := []models.Document{
		{ID: 1, Title: "Quarterly Report", Content: "Revenue and numbers."},
		{ID: 2, Title: "Vector Databases", Content: "All about vectors."},
		{ID: 3, Title: "Notes", Content: "Mentions vector once."},
	}

	results := RankFallback(docs, "vector", now, 5)
	require.Len(t, results, 3)

	assert.Equal(t, 2, results[0].ID)
	assert.Equal(t, 3, results[1].ID)
	assert.Equal(t, 1, results[2].ID)

	// Every document is scored; non-matches bottom out at the floor
	assert.InDelta(t, 0.1, results[2].Relevance, 1e-9)
}

func TestRankFallbackLimit(t *testing.T) {
	now := time.Now()
	docs := make([]models.Document, 8)
	for i := range docs {
		docs[i] = models.Document{ID: i + 1, Title: "Vector notes", Content: "vector"}
	}

	results := RankFallback(docs, "vector", now, 5)
	assert.Len(t, results, 5)
}
