package tmdb

import "errors"

// Common errors returned by the TMDB client.
var (
	// ErrEmptyQuery is returned when a search query is empty or whitespace.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrMissingAPIKey is returned when the client is created without a key.
	ErrMissingAPIKey = errors.New("TMDB API key is required")
)
