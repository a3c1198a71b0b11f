package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	browser "github.com/mutablelogic/go-news/pkg/browser"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	markdown "github.com/mutablelogic/go-news/pkg/ui/markdown"
	picker "github.com/mutablelogic/go-news/pkg/ui/picker"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FetchCommand struct {
	Country     newsapi.Country  `name:"country" short:"c" help:"Country for top headlines (${countries})" default:"us"`
	Endpoint    newsapi.Endpoint `name:"endpoint" short:"e" help:"Endpoint (top-headlines, everything)" default:"top-headlines"`
	Query       *string          `name:"query" short:"q" help:"Search query, required for the everything endpoint" optional:""`
	Format      string           `name:"format" short:"f" help:"Output format (${enum})" enum:"text,markdown,table,json,yaml" default:"text"`
	Interactive bool             `name:"interactive" short:"i" help:"Choose an article to open in the browser"`
	URL         bool             `name:"url" help:"Print the request URL without fetching"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *FetchCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// Configure the request
	client.SetEndpoint(cmd.Endpoint).SetCountry(cmd.Country)
	if cmd.Query != nil {
		client.SetQuery(*cmd.Query)
	}

	// Print the URL only
	if cmd.URL {
		url, err := client.URL()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.stdout, url)
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "FetchCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Fetch the articles
	result := <-client.FetchAsync(parent)
	if result.Err != nil {
		return result.Err
	}

	// Choose an article, or write them all
	heading := markdown.Heading(client.Request())
	if cmd.Interactive {
		return picker.Run(parent, heading, result.Articles, browser.Open)
	}
	return writeArticles(ctx, cmd.Format, heading, result.Articles)
}
