package ai

import (
	"context"
	"sort"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/relevance"
)

// Ranking constants for the model-assisted path: rank position within the
// returned id list maps linearly onto [0.85, 0.99).
const (
	semanticBase   = 0.85
	semanticSpread = 0.14

	// fallbackLimit caps the degraded-mode result set.
	fallbackLimit = 5
)

// semanticRanking is the model's reply shape.
type semanticRanking struct {
	RelevantIDs []int  `json:"relevantIds"`
	Reasoning   string `json:"reasoning"`
}

// SemanticSearch re-ranks the submitted documents against the query using
// the completion model. When the model call fails, the local fallback
// scorer produces the ranking instead, so this path always returns a
// result set once the credential is configured. An unconfigured
// credential is surfaced as an error: callers learn about it from the
// status endpoint, not from silently degraded results.
func (s *Service) SemanticSearch(ctx context.Context, query string, docs []models.Document) (*models.SemanticSearchResult, error) {
	if len(docs) == 0 {
		return &models.SemanticSearchResult{Results: []models.DocumentWithRelevance{}, Took: 0}, nil
	}

	start := time.Now()

	var ranking semanticRanking
	err := s.complete(ctx, semanticSearchSystemPrompt, buildSemanticSearchPrompt(query, docs), &ranking)
	if err != nil {
		if !s.Available() {
			return nil, err
		}

		s.logger.Warn("semantic search degraded to local scoring", "error", err)
		return &models.SemanticSearchResult{
			Results: relevance.RankFallback(docs, query, time.Now(), fallbackLimit),
			Took:    time.Since(start).Milliseconds(),
		}, nil
	}

	results := rankByIDs(docs, ranking.RelevantIDs)
	return &models.SemanticSearchResult{
		Results:   results,
		Took:      time.Since(start).Milliseconds(),
		Reasoning: ranking.Reasoning,
	}, nil
}

// rankByIDs keeps only documents the model selected and scores them by
// rank position, best first.
func rankByIDs(docs []models.Document, ids []int) []models.DocumentWithRelevance {
	if len(ids) == 0 {
		return []models.DocumentWithRelevance{}
	}

	position := make(map[int]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	results := make([]models.DocumentWithRelevance, 0, len(ids))
	for i := range docs {
		rank, ok := position[docs[i].ID]
		if !ok {
			continue
		}
		results = append(results, models.DocumentWithRelevance{
			Document:  docs[i],
			Relevance: semanticBase + semanticSpread*(1-float64(rank)/float64(len(ids))),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results
}
