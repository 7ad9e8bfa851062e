package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the model backend. Provider is one of
// "anthropic", "openai", "gemini", "openrouter", or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig also serves OpenAI-compatible APIs through BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the backoff in RetryProvider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks Gemini, the only backend that accepts the audio
// attachments the pronunciation features send.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers PARLO_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "PARLO_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "PARLO_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "PARLO_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "PARLO_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "PARLO_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "PARLO_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "PARLO_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "PARLO_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "PARLO_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "PARLO_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the providers' conventional API key variables in
// priority order, Gemini first since it covers all features. The second
// return is false when no key is set anywhere.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate confirms the selected provider has the key it needs.
func (c Config) Validate() error {
	required := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	if c.Provider == "mock" {
		return nil
	}
	key, known := required[c.Provider]
	if !known {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("PARLO_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
