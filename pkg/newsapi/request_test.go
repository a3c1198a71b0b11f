package newsapi

import (
	"net/url"
	"testing"

	// Packages
	news "github.com/mutablelogic/go-news"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: Request

func Test_Request_Values(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		expect url.Values
		err    string
	}{
		{
			name:   "top headlines default country",
			req:    Request{Endpoint: TopHeadlines, Country: Us},
			expect: url.Values{"country": []string{"us"}},
		},
		{
			name:   "top headlines ignores query",
			req:    Request{Endpoint: TopHeadlines, Country: Gb, Query: types.Ptr("rust")},
			expect: url.Values{"country": []string{"gb"}},
		},
		{
			name:   "everything ignores country",
			req:    Request{Endpoint: Everything, Country: Fr, Query: types.Ptr("rust")},
			expect: url.Values{"q": []string{"rust"}},
		},
		{
			name:   "everything with empty query",
			req:    Request{Endpoint: Everything, Query: types.Ptr("")},
			expect: url.Values{"q": []string{""}},
		},
		{
			name: "everything without query",
			req:  Request{Endpoint: Everything},
			err:  "Query is required for 'everything' endpoint",
		},
		{
			name: "invalid endpoint",
			req:  Request{Endpoint: Endpoint(7)},
			err:  "Invalid endpoint",
		},
		{
			name: "invalid country",
			req:  Request{Endpoint: TopHeadlines, Country: Country(42)},
			err:  "Invalid country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Values()
			if tt.err != "" {
				assert.ErrorIs(t, err, news.ErrBadRequest)
				assert.Equal(t, tt.err, news.Message(err))
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}

func Test_Request_URL(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		endpoint string
		expect   string
	}{
		{
			name:     "top headlines for gb",
			req:      Request{Endpoint: TopHeadlines, Country: Gb},
			endpoint: endPoint,
			expect:   "https://newsapi.org/v2/top-headlines?country=gb",
		},
		{
			name:     "everything for rust",
			req:      Request{Endpoint: Everything, Query: types.Ptr("rust")},
			endpoint: endPoint,
			expect:   "https://newsapi.org/v2/everything?q=rust",
		},
		{
			name:     "query is percent-encoded",
			req:      Request{Endpoint: Everything, Query: types.Ptr("climate change & more #1")},
			endpoint: endPoint,
			expect:   "https://newsapi.org/v2/everything?q=climate+change+%26+more+%231",
		},
		{
			name:     "endpoint with trailing slash",
			req:      Request{Endpoint: TopHeadlines, Country: Jp},
			endpoint: "http://localhost:8080/v2/",
			expect:   "http://localhost:8080/v2/top-headlines?country=jp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.URL(tt.endpoint)
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func Test_Request_URL_Errors(t *testing.T) {
	assert := assert.New(t)

	// Bad base URLs
	for _, endpoint := range []string{"", "::", "newsapi.org/v2", "http://"} {
		_, err := Request{}.URL(endpoint)
		assert.ErrorIs(err, news.ErrURL, endpoint)
	}

	// Builder errors are passed through unchanged
	_, err := Request{Endpoint: Everything}.URL(endPoint)
	assert.ErrorIs(err, news.ErrBadRequest)
	assert.Equal("Query is required for 'everything' endpoint", news.Message(err))
}
