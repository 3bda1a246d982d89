// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"fmt"
	"strings"
)

// Supported provider names.
const (
	// ProviderGoogleAI talks to the Gemini API with an API key.
	ProviderGoogleAI = "googleai"

	// ProviderOpenAI talks to any OpenAI-compatible chat API (OpenAI, Ollama, vLLM, ...).
	ProviderOpenAI = "openai"
)

// Config holds configuration for the text generation provider.
type Config struct {
	// Provider selects the backend implementation.
	// One of ProviderGoogleAI or ProviderOpenAI.
	Provider string

	// Host is the base URL for OpenAI-compatible providers.
	// Ignored by ProviderGoogleAI.
	// Example: "http://localhost:11434/v1"
	Host string

	// Model is the model identifier used for generation.
	// Example: "gemini-1.5-flash", "qwen2.5:7b"
	Model string

	// APIKey authenticates against the provider.
	// Required for ProviderGoogleAI. OpenAI-compatible local servers accept any value.
	APIKey string

	// Temperature is the sampling temperature passed with every request.
	// Default: 0.7
	Temperature float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider sets the provider name.
func WithProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithHost sets the base URL for OpenAI-compatible providers.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = t
	}
}

// DefaultConfig returns a Config for the Gemini API with gemini-1.5-flash.
// The API key is left empty and must be supplied by the caller.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGoogleAI,
		Model:       "gemini-1.5-flash",
		Temperature: 0.7,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithAPIKey(os.Getenv("GEMINI_API_KEY")),
//	    WithModel("gemini-1.5-pro"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Provider names are lowercased and OpenAI-compatible hosts get the /v1 suffix
// most servers (Ollama, LocalAI, vLLM) expect.
func (c *Config) Normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.APIKey = strings.TrimSpace(c.APIKey)

	if c.Provider == ProviderOpenAI && c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration first. Validate performs no I/O, so a
// missing API key is reported before any client is constructed.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Provider {
	case ProviderGoogleAI:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderOpenAI:
		if c.Host == "" {
			return fmt.Errorf("ai config: Host is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("ai config: Model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("ai config: Temperature must be between 0 and 2")
	}
	return nil
}
