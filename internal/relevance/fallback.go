package relevance

import (
	"strings"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

// Fallback scorer weights. Phrase matches take the full weight; otherwise
// per-term matches earn partial credit proportional to the fraction of
// query terms found.
const (
	titlePhraseWeight   = 0.6
	titleTermsWeight    = 0.4
	contentPhraseWeight = 0.3
	contentTermsWeight  = 0.2
	tagTermsWeight      = 0.2
	categoryWeight      = 0.1

	recencyBonus  = 0.05
	recencyWindow = 30 // days

	fallbackFloor   = 0.1
	fallbackCeiling = 0.99

	// defaultScore is returned when the query tokenizes to nothing
	// (all terms too short to match on).
	defaultScore = 0.5
)

// FallbackScorer mirrors the degraded-mode heuristic used when the
// AI-assisted search path is unavailable. It is a materially different
// function from KeywordScorer: different weights, no high-confidence
// floor, and a recency component.
type FallbackScorer struct{}

// Score implements Scorer.
func (FallbackScorer) Score(doc *models.Document, query string, now time.Time) float64 {
	queryLower := strings.ToLower(query)
	terms := Tokenize(query)
	if len(terms) == 0 {
		return defaultScore
	}

	var score float64
	titleLower := strings.ToLower(doc.Title)

	contentLower := strings.ToLower(doc.Content)
	if contentLower == "" {
		contentLower = strings.ToLower(doc.Preview)
	}

	// Title match is heavily weighted
	if strings.Contains(titleLower, queryLower) {
		score += titlePhraseWeight
	} else if n := countMatching(terms, titleLower); n > 0 {
		score += titleTermsWeight * float64(n) / float64(len(terms))
	}

	// Content match
	if strings.Contains(contentLower, queryLower) {
		score += contentPhraseWeight
	} else if n := countMatching(terms, contentLower); n > 0 {
		score += contentTermsWeight * float64(n) / float64(len(terms))
	}

	// Tag matches: bidirectional containment between tag and term
	if len(doc.Tags) > 0 {
		tagsLower := make([]string, len(doc.Tags))
		for i, tag := range doc.Tags {
			tagsLower[i] = strings.ToLower(tag)
		}

		matched := 0
		for _, term := range terms {
			for _, tag := range tagsLower {
				if strings.Contains(tag, term) || strings.Contains(term, tag) {
					matched++
					break
				}
			}
		}
		if matched > 0 {
			score += tagTermsWeight * float64(matched) / float64(len(terms))
		}
	}

	// Category match
	if doc.CategoryID != "" && strings.Contains(queryLower, strings.ToLower(doc.CategoryID)) {
		score += categoryWeight
	}

	// Recent documents get a small boost, linearly decayed to zero at
	// the window edge
	if !doc.UpdatedAt.IsZero() {
		days := now.Sub(doc.UpdatedAt).Hours() / 24
		if days >= 0 && days < recencyWindow {
			score += recencyBonus * (1 - days/recencyWindow)
		}
	}

	return clamp(score, fallbackFloor, fallbackCeiling)
}

// RankFallback scores all documents with the fallback heuristic and
// returns at most limit results sorted by descending relevance, stable
// on ties.
func RankFallback(docs []models.Document, query string, now time.Time, limit int) []models.DocumentWithRelevance {
	var scorer FallbackScorer

	results := rank(docs, func(d *models.Document) float64 {
		return scorer.Score(d, query, now)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func countMatching(terms []string, text string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}
