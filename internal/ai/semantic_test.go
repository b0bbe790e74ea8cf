package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

func semanticDocs() []models.Document {
	return []models.Document{
		{ID: 1, Title: "Quarterly Report", Preview: "Revenue and numbers."},
		{ID: 2, Title: "Vector Database Architecture", Preview: "All about vector databases."},
		{ID: 3, Title: "Product Roadmap", Preview: "Feature planning."},
	}
}

func TestSemanticSearch(t *testing.T) {
	svc := NewServiceWithClient(&stubModel{
		response: `{"relevantIds": [2, 3], "reasoning": "The query concerns vector storage."}`,
	}, testLogger())

	result, err := svc.SemanticSearch(context.Background(), "vector storage", semanticDocs())
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	assert.Equal(t, 2, result.Results[0].ID)
	assert.Equal(t, 3, result.Results[1].ID)
	assert.Equal(t, "The query concerns vector storage.", result.Reasoning)

	// Rank position maps linearly onto the score band
	assert.InDelta(t, 0.99, result.Results[0].Relevance, 1e-9)
	assert.InDelta(t, 0.92, result.Results[1].Relevance, 1e-9)
}

func TestSemanticSearchEmptyDocuments(t *testing.T) {
	svc := NewServiceWithClient(&stubModel{}, testLogger())

	result, err := svc.SemanticSearch(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Results)
}

func TestSemanticSearchIgnoresUnknownIDs(t *testing.T) {
	svc := NewServiceWithClient(&stubModel{
		response: `{"relevantIds": [2, 99], "reasoning": "x"}`,
	}, testLogger())

	result, err := svc.SemanticSearch(context.Background(), "vector", semanticDocs())
	require.NoError(t, err)

	require.Len(t, result.Results, 1)
	assert.Equal(t, 2, result.Results[0].ID)
}

func TestSemanticSearchModelSelectsNothing(t *testing.T) {
	svc := NewServiceWithClient(&stubModel{
		response: `{"relevantIds": [], "reasoning": "nothing matched"}`,
	}, testLogger())

	result, err := svc.SemanticSearch(context.Background(), "unrelated", semanticDocs())
	require.NoError(t, err)
	assert.Empty(t, result.Results)
}

func TestSemanticSearchDegradesToLocalScoring(t *testing.T) {
	svc := NewServiceWithClient(&stubModel{err: errors.New("rate limited")}, testLogger())

	result, err := svc.SemanticSearch(context.Background(), "vector", semanticDocs())
	require.NoError(t, err)

	// The local scorer ranks every document; the vector document wins
	require.Len(t, result.Results, 3)
	assert.Equal(t, 2, result.Results[0].ID)
	assert.Empty(t, result.Reasoning)
}

func TestSemanticSearchUnconfiguredFails(t *testing.T) {
	svc, err := NewService(&config.Config{}, testLogger())
	require.NoError(t, err)

	_, err = svc.SemanticSearch(context.Background(), "vector", semanticDocs())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
