package ai

import "context"

// Generator produces free-form text from a single prompt.
// Implementations must be safe for concurrent use.
type Generator interface {
	// GenerateText submits prompt to the model and returns its raw text output.
	// The output is not post-processed; callers handle markdown fences and parsing.
	// Returns ErrEmptyResponse if the model produced no candidates.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AIProvider owns a Generator and the client resources behind it.
type AIProvider interface {
	// Generator returns the text generation service.
	Generator() Generator

	// Model returns the model identifier the provider was configured with.
	Model() string

	// Close releases resources held by the provider.
	// After Close is called, the provider and its generator should not be used.
	Close() error
}
