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


// Package ai provides abstractions for the text generation services used by riftseed.
//
// The seeding pipeline depends only on the Generator interface, so the model
// backend can be swapped without touching parsing or upload logic.
//
// # Implementation Packages
//
//   - ai/googleai: Gemini API via langchaingo, authenticated with an API key
//   - ai/openai: OpenAI-compatible chat APIs via langchaingo (OpenAI, Ollama, vLLM)
//   - ai/mock: Test doubles for unit testing without network access
//
// # Constructor Return Type Pattern
//
// Public constructors (googleai.NewProvider, openai.NewGenerator, ...) return
// interface types. Mock constructors return concrete types so tests can inject
// responses and assert on call counts:
//
//	gen := mock.NewMockGenerator().WithResponse("[]")
//	count := gen.CallCount()
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
//	provider, err := googleai.NewProvider(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Generator().GenerateText(ctx, prompt)
package ai
