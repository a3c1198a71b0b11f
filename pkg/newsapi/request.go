package newsapi

import (
	"net/url"

	// Packages
	news "github.com/mutablelogic/go-news"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request is the configuration for a single fetch. Country is only sent to
// the top-headlines endpoint and Query only to the everything endpoint.
type Request struct {
	Endpoint Endpoint `json:"endpoint"`
	Country  Country  `json:"country"`
	Query    *string  `json:"q,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Path returns the path segment for the request, relative to the API base URL
func (r Request) Path() string {
	return r.Endpoint.String()
}

// Values returns the query parameters for the request. The everything
// endpoint requires a query; a query set to the empty string is still
// considered present.
func (r Request) Values() (url.Values, error) {
	result := url.Values{}
	switch r.Endpoint {
	case TopHeadlines:
		code, err := r.Country.MarshalText()
		if err != nil {
			return nil, err
		}
		result.Set("country", string(code))
	case Everything:
		if r.Query == nil {
			return nil, news.ErrBadRequest.With("Query is required for 'everything' endpoint")
		}
		result.Set("q", *r.Query)
	default:
		return nil, news.ErrBadRequest.With("Invalid endpoint")
	}
	return result, nil
}

// URL returns the fully-qualified URL for the request, relative to the base
// URL endpoint. Query values are percent-encoded.
func (r Request) URL(endpoint string) (string, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", news.ErrURL.Wrap(err)
	} else if base.Scheme == "" || base.Host == "" {
		return "", news.ErrURL.Withf("invalid endpoint %q", endpoint)
	}
	values, err := r.Values()
	if err != nil {
		return "", err
	}
	result := base.JoinPath(r.Path())
	result.RawQuery = values.Encode()
	return result.String(), nil
}
