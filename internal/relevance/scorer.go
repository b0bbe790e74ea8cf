// Package relevance scores documents against free-text queries.
//
// Two scorers implement the same contract but are deliberately not
// numerically comparable: KeywordScorer backs the primary search path and
// clamps every match into a high-confidence band, while FallbackScorer is
// the degraded mode used when the AI-assisted path is unavailable and
// produces finer-grained scores over a wider range. Callers must not mix
// scores across the two.
package relevance

import (
	"sort"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

// Scorer produces a relevance score in [0, 1] for a document against a
// query. Scoring is a pure function of (document, query, now); now feeds
// only recency heuristics.
type Scorer interface {
	Score(doc *models.Document, query string, now time.Time) float64
}

// rank annotates and sorts documents by descending score. Ties keep the
// original document order.
func rank(docs []models.Document, score func(*models.Document) float64) []models.DocumentWithRelevance {
	results := make([]models.DocumentWithRelevance, 0, len(docs))
	for i := range docs {
		results = append(results, models.DocumentWithRelevance{
			Document:  docs[i],
			Relevance: score(&docs[i]),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
