package ai

import (
	"fmt"
	"strings"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

const analyzeSystemPrompt = "You are a document analysis expert. Analyze the document and extract key information."

func buildAnalyzePrompt(text string) string {
	return fmt.Sprintf(`Analyze this document and return a JSON object with the following properties:
- topics: an array of main topics (5 max)
- entities: an array of key entities mentioned (5 max)
- summary: a concise summary (max 100 words)
- sentiment: overall sentiment (positive, negative, or neutral)
- readabilityScore: estimated readability score from 0-100

Document text:
%s`, text)
}

const tagsSystemPrompt = "You are a document tagging expert. Generate relevant tags for the document."

func buildTagsPrompt(text string) string {
	return fmt.Sprintf(`Generate 3-5 relevant tags for the following document. Return ONLY a JSON object with a 'tags' property containing an array of tag strings.

Document text:
%s`, text)
}

const categorizeSystemPrompt = "You are a document categorization expert. Categorize the document into one of these categories: technical, finance, product, research, legal, marketing."

func buildCategorizePrompt(text, title string) string {
	if title == "" {
		title = "Untitled Document"
	}
	return fmt.Sprintf(`Categorize the following document into one of these categories: technical, finance, product, research, legal, marketing.
Return ONLY a JSON object with a 'category' property containing the category string.

Document title: %s

Document text:
%s`, title, text)
}

const semanticSearchSystemPrompt = "You are a semantic search expert. Find the most relevant documents based on the query."

func buildSemanticSearchPrompt(query string, docs []models.Document) string {
	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, fmt.Sprintf("ID %d: %s - %s", doc.ID, doc.Title, doc.Preview))
	}

	return fmt.Sprintf(`Given the following query and documents, return the IDs of the 5 most relevant documents.

Query: %q

Documents:
%s

Return ONLY a JSON object with these properties:
- relevantIds: array of relevant document IDs sorted by relevance
- reasoning: brief explanation of your ranking logic`, query, strings.Join(lines, "\n"))
}

// truncate bounds the text forwarded to the completion API, marking the
// cut with a trailing ellipsis.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
