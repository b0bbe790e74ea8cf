package relevance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSnippet(t *testing.T) {
	t.Run("short text returned whole", func(t *testing.T) {
		assert.Equal(t, "brief note", ExtractSnippet("brief note", "vector", 200))
	})

	t.Run("no query yields the head", func(t *testing.T) {
		text := strings.Repeat("word ", 100)
		got := ExtractSnippet(text, "", 50)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, text[:50]+"...", got)
	})

	t.Run("no match yields the head", func(t *testing.T) {
		text := strings.Repeat("word ", 100)
		got := ExtractSnippet(text, "kubernetes", 50)
		assert.Equal(t, text[:50]+"...", got)
	})

	t.Run("window centers on the match", func(t *testing.T) {
		text := strings.Repeat("filler ", 50) + "vector" + strings.Repeat(" padding", 50)
		got := ExtractSnippet(text, "vector", 100)

		assert.Contains(t, got, "vector")
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("start stays at zero for an early match", func(t *testing.T) {
		text := "vector search " + strings.Repeat("filler ", 60)
		got := ExtractSnippet(text, "vector", 100)

		assert.True(t, strings.HasPrefix(got, "vector search"))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("zero max length uses the default", func(t *testing.T) {
		text := strings.Repeat("word ", 100)
		got := ExtractSnippet(text, "", 0)
		assert.Equal(t, text[:DefaultSnippetLength]+"...", got)
	})

	t.Run("window starts on a word boundary", func(t *testing.T) {
		text := strings.Repeat("filler ", 50) + "vector" + strings.Repeat(" padding", 50)
		got := ExtractSnippet(text, "vector", 100)

		body := strings.TrimPrefix(got, "...")
		assert.False(t, strings.HasPrefix(body, " "))
	})
}
