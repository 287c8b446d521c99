package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiModel is the default Gemini chat model.
const GeminiModel = "gemini-2.0-flash"

// GeminiProvider translates via Google's Gemini API.
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a Gemini translation provider
func NewGeminiProvider(config *Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY)")
	}

	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     config.APIKey,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// Translate sends one chunk through the Gemini API
func (p *GeminiProvider) Translate(ctx context.Context, req Request) (string, error) {
	model := p.config.Model
	if model == "" {
		model = GeminiModel
	}

	prompt := UserPrompt(req)
	if req.ExtraPrompt != "" {
		prompt += "\n\n" + req.ExtraPrompt
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := result.Text()
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("empty translation returned")
	}

	return translated, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("API key not configured")
	}
	return nil
}
