package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/BUB97/mdbook-translator/internal/provider"
)

// Lister handles listing available models on an OpenAI-compatible
// endpoint
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a model lister for the named provider's endpoint.
// An empty baseURL targets DeepSeek. Gemini speaks a different API and
// is rejected here rather than fed a Gemini key on a DeepSeek URL.
func NewLister(providerName, apiKey, baseURL string) (*Lister, error) {
	if providerName == "gemini" {
		return nil, fmt.Errorf("model listing is only available for OpenAI-compatible providers (deepseek, openai)")
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = provider.DeepSeekBaseURL
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}, nil
}

// ListAvailableModels prints the models the endpoint offers, chat
// models first.
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("API key not found. Set DEEPSEEK_API_KEY or configure it in .mdbook-translator.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels, otherModels []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "chat") || strings.Contains(id, "gpt") || strings.Contains(id, "reasoner") {
			chatModels = append(chatModels, id)
		} else {
			otherModels = append(otherModels, id)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(otherModels)

	fmt.Fprintln(w, "Available models:")
	fmt.Fprintln(w, "\nChat models:")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, model := range chatModels {
		fmt.Fprintf(w, "  %s\n", model)
	}

	if len(otherModels) > 0 {
		fmt.Fprintln(w, "\nOther models:")
		for _, model := range otherModels {
			fmt.Fprintf(w, "  %s\n", model)
		}
	}

	return nil
}
