/*
newsapi implements an API client for NewsAPI
https://newsapi.org/docs/
*/
package newsapi

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	news "github.com/mutablelogic/go-news"
	version "github.com/mutablelogic/go-news/pkg/version"
	types "github.com/mutablelogic/go-server/pkg/types"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client fetches articles from one endpoint. The endpoint, country and query
// are set with the Set methods before calling Fetch; they are not validated
// until then.
type Client struct {
	*client.Client
	endpoint string
	tracer   trace.Tracer
	req      Request
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://newsapi.org/v2"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the NewsAPI endpoint with the given API key. The
// client defaults to top headlines for the United States.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	return NewWithEndpoint(endPoint, apiKey, opts...)
}

// NewWithEndpoint creates a client for an API rooted at endpoint, for
// example "https://newsapi.org/v2".
func NewWithEndpoint(endpoint, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, news.ErrBadRequest.With("missing API key")
	}

	// Check the endpoint can be used as a base URL
	if _, err := (Request{}).URL(endpoint); err != nil {
		return nil, err
	}

	// The key is sent as-is, without an authorization scheme
	opts = append([]client.ClientOpt{client.OptUserAgent(userAgent())}, opts...)
	opts = append(opts,
		client.OptEndpoint(endpoint),
		client.OptHeader("Authorization", apiKey),
	)
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client:   c,
		endpoint: endpoint,
		tracer:   noop.NewTracerProvider().Tracer(""),
		req:      Request{Endpoint: TopHeadlines, Country: Us},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c *Client) SetEndpoint(endpoint Endpoint) *Client {
	c.req.Endpoint = endpoint
	return c
}

func (c *Client) SetCountry(country Country) *Client {
	c.req.Country = country
	return c
}

func (c *Client) SetQuery(query string) *Client {
	c.req.Query = types.Ptr(query)
	return c
}

// ClearQuery removes any query set with SetQuery
func (c *Client) ClearQuery() *Client {
	c.req.Query = nil
	return c
}

// SetTracer sets the tracer used for fetch spans. A nil tracer disables
// tracing.
func (c *Client) SetTracer(tracer trace.Tracer) *Client {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	c.tracer = tracer
	return c
}

// Request returns a copy of the current configuration
func (c *Client) Request() Request {
	req := c.req
	if req.Query != nil {
		req.Query = types.Ptr(*req.Query)
	}
	return req
}

// URL returns the URL which Fetch will request
func (c *Client) URL() (string, error) {
	return c.req.URL(c.endpoint)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func userAgent() string {
	return "go-news/" + version.Version()
}
