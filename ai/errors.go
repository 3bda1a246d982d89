package ai

import "errors"

var (
	// ErrMissingAPIKey indicates that no API key was configured for a provider that needs one.
	ErrMissingAPIKey = errors.New("ai config: API key is required (set GEMINI_API_KEY)")

	// ErrUnknownProvider indicates an unsupported provider name.
	ErrUnknownProvider = errors.New("ai config: unknown provider")

	// ErrEmptyResponse indicates the model returned no candidates.
	ErrEmptyResponse = errors.New("model returned an empty response")
)
