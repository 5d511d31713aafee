package completion

import (
	"context"
	"errors"
	"fmt"

	"smartedybot/internal/config"

	"github.com/sashabaranov/go-openai"
)

// SystemPrompt is the fixed instruction sent with every request
const SystemPrompt = "Ты дружелюбный помощник SmartEdyBot."

// ErrNoChoices is returned when the API answers with an empty choice list
var ErrNoChoices = errors.New("completion returned no choices")

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompleter sends single-turn chat completion requests
type OpenAICompleter struct {
	client      chatClient
	model       string
	temperature float32
}

// NewOpenAICompleter creates a completer from cfg
func NewOpenAICompleter(cfg config.OpenAIConfig) *OpenAICompleter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Complete returns the content of the first choice
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
