/*
browser opens article links in the user's default web browser
*/
package browser

import (
	"io"
	"net/url"

	// Packages
	news "github.com/mutablelogic/go-news"
	browser "github.com/pkg/browser"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// openURL is replaced in tests
var openURL = browser.OpenURL

func init() {
	// The launcher writes to stdout, which would corrupt the terminal UI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Open launches the default browser with rawurl. Only absolute http and
// https URLs are opened.
func Open(rawurl string) error {
	u, err := url.Parse(rawurl)
	if err != nil {
		return news.ErrURL.Wrap(err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return news.ErrURL.Withf("missing host in %q", rawurl)
		}
	default:
		return news.ErrURL.Withf("unsupported scheme in %q", rawurl)
	}
	return openURL(u.String())
}
