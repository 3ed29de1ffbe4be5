// Package openai adapts an OpenAI-compatible chat-completion API to the
// TextGenerator port. Any endpoint speaking the same protocol works by
// overriding the base URL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	goopenai "github.com/sashabaranov/go-openai"
)

// Client wraps the go-openai client behind the TextGenerator port.
type Client struct {
	api   *goopenai.Client
	model string
}

// NewClient creates a text-generation client. baseURL may be empty to use
// the default OpenAI endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   goopenai.NewClientWithConfig(cfg),
		model: model,
	}
}

var _ ports.TextGenerator = (*Client)(nil)

// GenerateText sends the prompt as a single-turn chat completion and returns
// the model's reply. Cancellation and deadlines propagate through ctx.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
