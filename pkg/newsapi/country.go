package newsapi

import (
	// Packages
	news "github.com/mutablelogic/go-news"
	language "golang.org/x/text/language"
	display "golang.org/x/text/language/display"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Country is an ISO 3166-1 alpha-2 country code accepted by the
// top-headlines endpoint.
type Country int

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Us Country = iota
	Gb
	Ca
	Au
	In
	Jp
	Cn
	De
	Fr
)

var countries = map[Country]string{
	Us: "us",
	Gb: "gb",
	Ca: "ca",
	Au: "au",
	In: "in",
	Jp: "jp",
	Cn: "cn",
	De: "de",
	Fr: "fr",
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseCountry returns the country for the lowercase code s. There is no
// case folding or trimming.
func ParseCountry(s string) (Country, error) {
	for c, code := range countries {
		if code == s {
			return c, nil
		}
	}
	return 0, news.ErrBadRequest.With("Invalid country")
}

// Countries returns all countries in declaration order.
func Countries() []Country {
	result := make([]Country, 0, len(countries))
	for c := Us; c <= Fr; c++ {
		result = append(result, c)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the English name of the country, or an empty string
func (c Country) Name() string {
	code, exists := countries[c]
	if !exists {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Country) String() string {
	if code, exists := countries[c]; exists {
		return code
	}
	return "invalid"
}

///////////////////////////////////////////////////////////////////////////////
// MARSHAL

func (c Country) MarshalText() ([]byte, error) {
	code, exists := countries[c]
	if !exists {
		return nil, news.ErrBadRequest.With("Invalid country")
	}
	return []byte(code), nil
}

func (c *Country) UnmarshalText(data []byte) error {
	v, err := ParseCountry(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
