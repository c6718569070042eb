package enhancer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompatible returns a Completer for any OpenAI-compatible chat API.
// DeepSeek is reached this way with baseURL https://api.deepseek.com/v1.
func NewOpenAICompatible(baseURL, apiKey, model string) Completer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAICompleter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *openAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", c.model)
	}
	return resp.Choices[0].Message.Content, nil
}
