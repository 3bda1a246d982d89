package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// testModel implements llms.Model for testing
type testModel struct {
	response *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *testModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.options)
	}
	return m.response, m.err
}

func (m *testModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLLMGenerator_GenerateText(t *testing.T) {
	model := &testModel{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: "```json\n[]\n```"}},
		},
	}
	gen := NewLLMGenerator(model, 0.4, "test")

	text, err := gen.GenerateText(context.Background(), "make items")
	require.NoError(t, err)

	// Raw text is returned untouched
	assert.Equal(t, "```json\n[]\n```", text)

	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
	require.Len(t, model.messages[0].Parts, 1)
	assert.Equal(t, llms.TextPart("make items"), model.messages[0].Parts[0])
	assert.Equal(t, 0.4, model.options.Temperature)
}

func TestLLMGenerator_EmptyResponse(t *testing.T) {
	t.Run("no choices", func(t *testing.T) {
		gen := NewLLMGenerator(&testModel{response: &llms.ContentResponse{}}, 0, "test")

		_, err := gen.GenerateText(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("nil response", func(t *testing.T) {
		gen := NewLLMGenerator(&testModel{}, 0, "test")

		_, err := gen.GenerateText(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestLLMGenerator_ModelError(t *testing.T) {
	boom := errors.New("quota exceeded")
	gen := NewLLMGenerator(&testModel{err: boom}, 0, "test")

	_, err := gen.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, boom)
}
