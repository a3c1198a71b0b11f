// Package markdown renders a list of articles as a Markdown document, and
// renders that document for the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"

	// Packages
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	separator = "---"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Heading returns the document heading for a request
func Heading(req newsapi.Request) string {
	switch req.Endpoint {
	case newsapi.Everything:
		if req.Query != nil {
			return fmt.Sprintf("Search results for %q", *req.Query)
		}
		return "Search results"
	default:
		return "Top headlines"
	}
}

// Document returns the articles as Markdown, in the order given. Each
// article has an enumerated index, the title as inline code, the URL as an
// italic quote and a separator.
func Document(heading string, articles []newsapi.Article) string {
	var buf strings.Builder

	buf.WriteString("# " + heading + "\n\n")
	if len(articles) == 0 {
		buf.WriteString("*No articles*\n")
		return buf.String()
	}
	for i, article := range articles {
		fmt.Fprintf(&buf, "**%d.** %s\n\n", i+1, inlineCode(article.Title))
		fmt.Fprintf(&buf, "> *%s*\n\n", escape(article.Url))
		buf.WriteString(separator + "\n\n")
	}
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// inlineCode wraps s in a code span, using a longer fence when s itself
// contains backticks
func inlineCode(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "`-`"
	}
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
)

func escape(s string) string {
	return escaper.Replace(strings.TrimSpace(s))
}
