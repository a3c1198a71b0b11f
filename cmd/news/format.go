package main

import (
	"encoding/json"
	"fmt"
	"io"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	news "github.com/mutablelogic/go-news"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	markdown "github.com/mutablelogic/go-news/pkg/ui/markdown"
	table "github.com/mutablelogic/go-news/pkg/ui/table"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type articleTable []newsapi.Article

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeArticles writes the articles to standard output in the given format
func writeArticles(ctx *Globals, format, heading string, articles []newsapi.Article) error {
	if articles == nil {
		articles = []newsapi.Article{}
	}
	switch format {
	case "text":
		return writeText(ctx, heading, articles)
	case "markdown":
		_, err := io.WriteString(ctx.stdout, markdown.Document(heading, articles))
		return err
	case "table":
		_, err := fmt.Fprintln(ctx.stdout, table.RenderWidth(articleTable(articles), ctx.width))
		return err
	case "json":
		enc := json.NewEncoder(ctx.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	case "yaml":
		enc := yaml.NewEncoder(ctx.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(articles); err != nil {
			return err
		}
		return enc.Close()
	default:
		return news.ErrBadRequest.Withf("unsupported format %q", format)
	}
}

// writeText renders the markdown document, with colour only when the output
// supports it
func writeText(ctx *Globals, heading string, articles []newsapi.Article) error {
	r, err := markdown.New(ctx.width, ctx.dark,
		glamour.WithColorProfile(termenv.NewOutput(ctx.stdout).Profile),
	)
	if err != nil {
		return err
	}
	out, err := r.RenderArticles(heading, articles)
	if err != nil {
		return err
	}
	_, err = io.WriteString(ctx.stdout, out)
	return err
}

///////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (t articleTable) Header() []string {
	return []string{"#", "Title", "URL"}
}

func (t articleTable) Len() int {
	return len(t)
}

func (t articleTable) Row(i int) []any {
	return []any{i + 1, table.Bold{Value: t[i].Title}, t[i].Url}
}
