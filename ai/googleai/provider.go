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


package googleai

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/riftforge/riftseed/ai"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Provider implements ai.AIProvider using the Gemini API.
type Provider struct {
	config    *ai.Config
	client    *googleai.GoogleAI
	generator *ai.LLMGenerator
	logger    *slog.Logger
}

// NewProvider creates a Gemini-backed provider.
// The config is validated first, so a missing API key fails with
// ai.ErrMissingAPIKey before any client is constructed.
//
// Returns ai.AIProvider interface to enforce abstraction.
func NewProvider(ctx context.Context, config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Provider != ai.ProviderGoogleAI {
		return nil, fmt.Errorf("%w: googleai package cannot serve %q", ai.ErrUnknownProvider, config.Provider)
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		client:    client,
		generator: ai.NewLLMGenerator(client, config.Temperature, "googleai-generator"),
		logger:    slog.Default().With("component", "googleai-provider"),
	}, nil
}

// Generator returns the text generation service.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// Model returns the configured model identifier.
func (p *Provider) Model() string {
	return p.config.Model
}

// Close releases the underlying Gemini client.
func (p *Provider) Close() error {
	p.logger.Debug("closing googleai provider")
	if c, ok := any(p.client).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
