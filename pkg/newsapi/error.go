package newsapi

import (
	// Packages
	news "github.com/mutablelogic/go-news"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Messages for the error codes returned in the response envelope.
// See: https://newsapi.org/docs/errors
var responseErrors = map[string]string{
	"apiKeyDisabled":    "Your API key has been disabled",
	"apiKeyExhausted":   "Your API key has no more requests available",
	"apiKeyInvalid":     "Your API key is invalid",
	"apiKeyMissing":     "Your API key is missing",
	"parametersMissing": "Required parameters are missing",
	"rateLimited":       "You have been rate limited",
	"sourcesTooMany":    "Too many sources requested",
}

const unknownError = "Unknown error"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResponseError maps the code field of a failed response to an error.
// Unrecognised and absent codes map to "Unknown error".
func ResponseError(code *string) error {
	if code != nil {
		if message, exists := responseErrors[*code]; exists {
			return news.ErrBadRequest.With(message)
		}
	}
	return news.ErrBadRequest.With(unknownError)
}
