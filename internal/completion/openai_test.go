package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestOpenAICompleter_Complete(t *testing.T) {
	fake := &fakeChat{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: " Hi there "}},
		},
	}}
	c := &OpenAICompleter{client: fake, model: "gpt-4o-mini", temperature: 0.4}

	answer, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, " Hi there ", answer)
	assert.Equal(t, "gpt-4o-mini", fake.req.Model)
	assert.InDelta(t, 0.4, fake.req.Temperature, 0.0001)
	require.Len(t, fake.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.req.Messages[0].Role)
	assert.Equal(t, SystemPrompt, fake.req.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, fake.req.Messages[1].Role)
	assert.Equal(t, "hello", fake.req.Messages[1].Content)
}

func TestOpenAICompleter_Complete_Errors(t *testing.T) {
	tests := []struct {
		name        string
		fake        *fakeChat
		errContains string
	}{
		{
			name:        "api error",
			fake:        &fakeChat{err: errors.New("401 invalid api key")},
			errContains: "401 invalid api key",
		},
		{
			name:        "no choices",
			fake:        &fakeChat{},
			errContains: ErrNoChoices.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &OpenAICompleter{client: tt.fake, model: "gpt-4o-mini"}

			answer, err := c.Complete(context.Background(), "hello")

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Empty(t, answer)
		})
	}
}
