// Package gemini adapts the Google Gemini API to eino's chat model interface.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Config carries the provider settings for one chat model instance.
type Config struct {
	APIKey      string
	Model       string
	Temperature *float32
	TopP        *float32
	MaxTokens   *int
}

// ChatModel issues non-streaming completion calls against the Gemini API.
// Instances are created once at process start and reused read-only.
type ChatModel struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

var _ model.ChatModel = (*ChatModel)(nil)

// NewChatModel validates the configuration and creates the underlying client.
func NewChatModel(ctx context.Context, cfg *Config) (*ChatModel, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini: model name is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}
	if cfg.MaxTokens != nil {
		genCfg.MaxOutputTokens = int32(*cfg.MaxTokens)
	}

	return &ChatModel{client: client, model: cfg.Model, config: genCfg}, nil
}

// Generate issues one complete, non-streaming completion call.
func (c *ChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, toContents(input), c.config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	return fromResponse(resp)
}

// Stream satisfies the eino interface; the reply arrives as a single chunk
// because this backend only issues complete calls.
func (c *ChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := c.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// BindTools is unsupported; the assistant never calls tools.
func (c *ChatModel) BindTools([]*schema.ToolInfo) error {
	return errors.New("gemini: tool binding is not supported")
}
