package relevance

import (
	"strings"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

// Keyword scorer weights. The summed indicators are halved and clamped
// into [0.8, 0.99] so that any textual match surfaces as high confidence;
// the floor trades away resolution below 0.8 for a stable UI contract.
const (
	titleWeight   = 1.0
	contentWeight = 0.7
	tagWeight     = 0.5

	keywordFloor   = 0.8
	keywordCeiling = 0.99
)

// KeywordScorer is the server-side substring heuristic behind the primary
// search path.
type KeywordScorer struct{}

// Matches reports whether the document qualifies for the result set: the
// query must appear, case-insensitively, in the title, the content body,
// or at least one tag.
func (KeywordScorer) Matches(doc *models.Document, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(doc.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Content), q) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Score implements Scorer. now is unused; keyword scoring has no recency
// component.
func (KeywordScorer) Score(doc *models.Document, query string, _ time.Time) float64 {
	q := strings.ToLower(query)

	var score float64
	if strings.Contains(strings.ToLower(doc.Title), q) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(doc.Content), q) {
		score += contentWeight
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += tagWeight
		}
	}

	return clamp(score/2, keywordFloor, keywordCeiling)
}

// RankKeyword filters documents through the match predicate and returns
// them scored and sorted by descending relevance, stable on ties.
func RankKeyword(docs []models.Document, query string) []models.DocumentWithRelevance {
	var scorer KeywordScorer

	matched := make([]models.Document, 0, len(docs))
	for i := range docs {
		if scorer.Matches(&docs[i], query) {
			matched = append(matched, docs[i])
		}
	}

	return rank(matched, func(d *models.Document) float64 {
		return scorer.Score(d, query, time.Time{})
	})
}
