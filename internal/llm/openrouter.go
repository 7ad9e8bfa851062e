package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is the OpenAI provider pointed at OpenRouter's
// compatible API. Model names are vendor-prefixed and pass through
// untouched.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
	}, cfg.Model)

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
