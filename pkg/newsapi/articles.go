package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	news "github.com/mutablelogic/go-news"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Article struct {
	Title string `json:"title" yaml:"title"`
	Url   string `json:"url" yaml:"url"`
}

// Response is the envelope returned by both endpoints. Status is "ok" on
// success; otherwise Code holds the reason.
type Response struct {
	Status       string    `json:"status"`
	Code         *string   `json:"code,omitempty"`
	TotalResults int       `json:"totalResults,omitempty"`
	Articles     []Article `json:"articles"`
}

// Result is delivered by FetchAsync
type Result struct {
	*Response
	Err error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Fetch performs one request with the current configuration and blocks
// until the response has been decoded. Articles are returned in the order
// the server sent them.
func (c *Client) Fetch(ctx context.Context) (*Response, error) {
	return c.fetch(ctx, c.Request())
}

// FetchAsync performs the same request as Fetch in the background. The
// channel receives exactly one result and is then closed. Cancel ctx to
// abandon the request.
func (c *Client) FetchAsync(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	req := c.Request()
	go func() {
		defer close(ch)
		response, err := c.fetch(ctx, req)
		ch <- Result{Response: response, Err: err}
	}()
	return ch
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

// Unmarshal decodes the envelope from the body whatever the content type.
// A body which is empty, null or has trailing data is a decode failure, as
// is a successful status without articles.
func (r *Response) Unmarshal(_ http.Header, body io.Reader) error {
	var response *Response
	dec := json.NewDecoder(body)
	if err := dec.Decode(&response); err != nil {
		return decodeError(err)
	} else if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return news.ErrDecode.With("unexpected data after response")
		}
		return decodeError(err)
	}

	switch {
	case response == nil:
		return news.ErrDecode.With("empty response")
	case response.Status == "ok" && response.Articles == nil:
		return news.ErrDecode.With("missing articles")
	}

	*r = *response
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) fetch(ctx context.Context, req Request) (_ *Response, err error) {
	// OTEL
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "newsapi.Fetch",
		attribute.String("request", types.Stringify(req)),
	)
	defer func() { endSpan(err) }()

	// Build the query
	values, err := req.Values()
	if err != nil {
		return nil, err
	}

	// Request -> Response
	var response Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath(req.Path()), client.OptQuery(values)); err != nil {
		return nil, fetchError(ctx, err)
	} else if response.Status != "ok" {
		return nil, ResponseError(response.Code)
	}

	// Return success
	return &response, nil
}

// fetchError assigns a kind to an error returned by the transport
func fetchError(ctx context.Context, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var httpErr httpresponse.Err
	var urlErr *url.Error
	var netErr net.Error

	switch {
	case errors.Is(err, news.ErrDecode):
		return err
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return news.ErrDecode.Wrap(err)
	case errors.As(err, &httpErr), errors.As(err, &urlErr), errors.As(err, &netErr):
		return news.ErrTransport.Wrap(err)
	case ctx.Err() != nil:
		return news.ErrTransport.Wrap(err)
	default:
		return news.ErrBodyRead.Wrap(err)
	}
}

// decodeError assigns a kind to an error from the JSON decoder. Read errors
// are returned unchanged so fetchError can classify them.
func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return news.ErrDecode.With("empty response")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return news.ErrDecode.With("truncated response")
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return news.ErrDecode.Wrap(err)
	default:
		return err
	}
}
