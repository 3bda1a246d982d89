// Package googleai provides a text generator backed by the Gemini API.
//
// The langchaingo googleai client is created with the configured API key and
// default model; requests go through ai.LLMGenerator.
//
//	cfg := ai.NewConfig(ai.WithAPIKey(apiKey))
//	provider, err := googleai.NewProvider(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
package googleai
