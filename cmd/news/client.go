package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	news "github.com/mutablelogic/go-news"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a newsapi.Client configured from the global flags
func (g *Globals) Client() (*newsapi.Client, error) {
	if g.APIKey == "" {
		return nil, news.ErrBadRequest.With("missing API key, set API_KEY in the environment or use --api-key")
	}

	// Client options
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}

	// Create the client
	c, err := newsapi.NewWithEndpoint(g.Endpoint, g.APIKey, opts...)
	if err != nil {
		return nil, err
	}
	return c.SetTracer(g.tracer), nil
}
