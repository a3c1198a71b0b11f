package newsapi

import (
	// Packages
	news "github.com/mutablelogic/go-news"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Endpoint selects the API operation, which determines the URL path and the
// parameters sent with the request.
type Endpoint int

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TopHeadlines Endpoint = iota
	Everything
)

var endpoints = []Endpoint{TopHeadlines, Everything}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseEndpoint returns the endpoint for the canonical string s, or an
// error if s is not exactly one of the canonical strings.
func ParseEndpoint(s string) (Endpoint, error) {
	switch s {
	case "top-headlines":
		return TopHeadlines, nil
	case "everything":
		return Everything, nil
	}
	return 0, news.ErrBadRequest.With("Invalid endpoint")
}

// Endpoints returns all endpoints in declaration order.
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), endpoints...)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Endpoint) String() string {
	switch e {
	case TopHeadlines:
		return "top-headlines"
	case Everything:
		return "everything"
	}
	return "invalid"
}

///////////////////////////////////////////////////////////////////////////////
// MARSHAL

func (e Endpoint) MarshalText() ([]byte, error) {
	if e != TopHeadlines && e != Everything {
		return nil, news.ErrBadRequest.With("Invalid endpoint")
	}
	return []byte(e.String()), nil
}

func (e *Endpoint) UnmarshalText(data []byte) error {
	v, err := ParseEndpoint(string(data))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
