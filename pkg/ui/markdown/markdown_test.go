package markdown_test

import (
	"strings"
	"testing"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	markdown "github.com/mutablelogic/go-news/pkg/ui/markdown"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: Document

func Test_markdown_001(t *testing.T) {
	assert := assert.New(t)
	doc := markdown.Document("Top headlines", []newsapi.Article{
		{Title: "First story", Url: "https://example.com/one"},
		{Title: "Second story", Url: "https://example.com/two"},
	})
	assert.Equal("# Top headlines\n\n"+
		"**1.** `First story`\n\n> *https://example.com/one*\n\n---\n\n"+
		"**2.** `Second story`\n\n> *https://example.com/two*\n\n---\n\n", doc)
}

func Test_markdown_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("# Top headlines\n\n*No articles*\n", markdown.Document("Top headlines", nil))
}

func Test_markdown_003(t *testing.T) {
	// Backticks and markdown characters in the content
	assert := assert.New(t)
	doc := markdown.Document("x", []newsapi.Article{
		{Title: "Using `go vet`", Url: "https://example.com/a_b*c"},
		{Title: "  Spaced\nout  ", Url: ""},
		{Title: "", Url: "https://example.com"},
	})
	assert.Contains(doc, "**1.** `` Using `go vet` ``\n")
	assert.Contains(doc, "> *https://example.com/a\\_b\\*c*\n")
	assert.Contains(doc, "**2.** `Spaced out`\n")
	assert.Contains(doc, "**3.** `-`\n")
	assert.Equal(3, strings.Count(doc, "\n---\n"))
}

func Test_markdown_004(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Top headlines", markdown.Heading(newsapi.Request{Endpoint: newsapi.TopHeadlines, Query: types.Ptr("ignored")}))
	assert.Equal(`Search results for "rust"`, markdown.Heading(newsapi.Request{Endpoint: newsapi.Everything, Query: types.Ptr("rust")}))
	assert.Equal("Search results", markdown.Heading(newsapi.Request{Endpoint: newsapi.Everything}))
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: Renderer

func Test_renderer_001(t *testing.T) {
	assert := assert.New(t)
	for _, dark := range []bool{true, false} {
		r, err := markdown.New(0, dark, glamour.WithColorProfile(termenv.Ascii))
		require.NoError(t, err)

		out, err := r.RenderArticles("Top headlines", []newsapi.Article{
			{Title: "Alpha", Url: "https://example.com/alpha"},
			{Title: "Bravo", Url: "https://example.com/bravo"},
		})
		require.NoError(t, err)
		t.Log(out)

		assert.Contains(out, "headlines")
		alpha, bravo := strings.Index(out, "Alpha"), strings.Index(out, "Bravo")
		assert.True(alpha >= 0 && bravo > alpha, "articles in order")
		assert.Contains(out, "example.com/alpha")
		assert.Contains(out, "example.com/bravo")
		assert.True(strings.HasSuffix(out, "\n"))
	}
}
