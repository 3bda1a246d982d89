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
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
)

// LLMGenerator implements Generator on top of any langchaingo llms.Model.
// Provider packages construct the model and wrap it here.
type LLMGenerator struct {
	model       llms.Model
	temperature float64
	logger      *slog.Logger
}

// NewLLMGenerator wraps model. component is attached to every log line.
func NewLLMGenerator(model llms.Model, temperature float64, component string) *LLMGenerator {
	return &LLMGenerator{
		model:       model,
		temperature: temperature,
		logger:      slog.Default().With("component", component),
	}
}

// GenerateText sends prompt as a single human message and returns the first choice.
func (g *LLMGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	g.logger.Debug("generating content", "promptLength", len(prompt))

	response, err := g.model.GenerateContent(ctx, content, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if response == nil || len(response.Choices) < 1 {
		g.logger.Warn("no choices returned from model")
		return "", ErrEmptyResponse
	}

	text := response.Choices[0].Content
	g.logger.Debug("received content", "length", len(text))
	return text, nil
}
