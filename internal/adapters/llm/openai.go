// Package llm contains the OpenAI-compatible text-generation adapter.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sashabaranov/go-openai"
)

const defaultModel = "deepseek-chat"

// Client implements secondary.TextGenerator against any OpenAI-compatible
// chat completion endpoint (OpenAI, DeepSeek, local gateways).
type Client struct {
	client *openai.Client
	model  string
}

// Options configures the client. Zero values fall back to environment
// variables and defaults.
type Options struct {
	APIKey  string
	BaseURL string // empty means the upstream default
	Model   string
}

// NewClient creates a chat-completion client.
func NewClient(opts Options) (*Client, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("BPOS_ASSISTANT_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("assistant API key not configured")
	}

	model := opts.Model
	if model == "" {
		model = os.Getenv("BPOS_ASSISTANT_MODEL")
	}
	if model == "" {
		model = defaultModel
		slog.Warn("assistant model not set, using default", "model", model)
	}

	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	slog.Info("initializing assistant client", "model", model, "base_url", cfg.BaseURL)
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Generate implements the TextGenerator interface.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	slog.Debug("generating assistant text", "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		slog.Error("assistant API call failed", "error", err)
		return "", fmt.Errorf("assistant API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}

	slog.Debug("assistant response received", "finish_reason", resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}
