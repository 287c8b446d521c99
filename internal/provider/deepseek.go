package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	// DeepSeekBaseURL is the OpenAI-compatible DeepSeek endpoint.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	// DeepSeekModel is the default DeepSeek chat model.
	DeepSeekModel = "deepseek-chat"
)

// DeepSeekProvider translates via an OpenAI-compatible chat-completions
// endpoint. It serves DeepSeek by default but any compatible endpoint
// works through the BaseURL setting, including OpenAI itself.
type DeepSeekProvider struct {
	client *openai.Client
	config *Config
}

// NewDeepSeekProvider creates a chat-completions translation provider
func NewDeepSeekProvider(config *Config) (*DeepSeekProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set DEEPSEEK_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = DeepSeekBaseURL
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}

	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}
	clientConfig.HTTPClient = httpClient

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Translate sends one chunk through the chat-completions API
func (p *DeepSeekProvider) Translate(ctx context.Context, req Request) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: SystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: UserPrompt(req),
		},
	}
	if req.ExtraPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.ExtraPrompt,
		})
	}

	model := p.config.Model
	if model == "" {
		model = DeepSeekModel
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translated := resp.Choices[0].Message.Content
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("empty translation returned")
	}

	return translated, nil
}

// Name returns the provider name
func (p *DeepSeekProvider) Name() string {
	if p.config.Provider == "openai" {
		return "openai"
	}
	return "deepseek"
}

// IsAvailable checks if the provider is properly configured
func (p *DeepSeekProvider) IsAvailable() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("API key not configured")
	}
	return nil
}
