// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Generator and ai.AIProvider
// for use in unit tests. The mocks allow tests to run without network access
// and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Canned response
//	gen := mock.NewMockGenerator().WithResponse("```json\n[]\n```")
//
//	// Custom behavior injection
//	gen := mock.NewMockGenerator().
//	    WithGenerateTextFunc(func(ctx context.Context, prompt string) (string, error) {
//	        return "", errors.New("quota exceeded")
//	    })
//
//	// Check call counts and the last prompt seen
//	count := gen.CallCount()
//	prompt := gen.LastPrompt()
//
// # Default Behavior
//
// Without a configured response MockGenerator returns an empty JSON array.
package mock
