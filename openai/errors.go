package openai

import "errors"

// Common errors returned by the OpenAI client.
var (
	// ErrMissingAPIKey is returned when the client is created without a key.
	ErrMissingAPIKey = errors.New("OpenAI API key is required")

	// ErrEmptyConversation is returned when a completion is requested with
	// no messages.
	ErrEmptyConversation = errors.New("conversation history cannot be empty")
)
