package mock

import (
	"context"
	"sync"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateTextFunc is called by GenerateText if set.
	// If nil, Response is returned.
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	// Response is the canned text returned when GenerateTextFunc is nil.
	Response string

	mu         sync.Mutex
	callCount  int
	lastPrompt string
}

// NewMockGenerator creates a mock generator that returns an empty JSON array.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{Response: "[]"}
}

// WithResponse sets the canned response and returns the generator for chaining.
func (m *MockGenerator) WithResponse(text string) *MockGenerator {
	m.Response = text
	return m
}

// WithGenerateTextFunc sets a custom behavior and returns the generator for chaining.
func (m *MockGenerator) WithGenerateTextFunc(fn func(ctx context.Context, prompt string) (string, error)) *MockGenerator {
	m.GenerateTextFunc = fn
	return m
}

// GenerateText records the call and returns the configured response.
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastPrompt = prompt
	fn := m.GenerateTextFunc
	response := m.Response
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return response, nil
}

// CallCount returns the number of times GenerateText was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastPrompt returns the prompt passed to the most recent call.
func (m *MockGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

// Reset clears the call count and custom behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastPrompt = ""
	m.GenerateTextFunc = nil
	m.Response = "[]"
}
