package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
			t.Fatal("expected an error without an API key")
		}
	})

	t.Run("model names pass through untouched", func(t *testing.T) {
		for _, model := range []string{
			"google/gemini-2.0-flash-exp",
			"anthropic/claude-3-haiku",
			"meta-llama/llama-3-8b",
		} {
			p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
			if err != nil {
				t.Fatalf("NewOpenRouterProvider(%q): %v", model, err)
			}
			if p.ModelID() != model {
				t.Errorf("ModelID() = %q, want %q", p.ModelID(), model)
			}
		}
	})

	t.Run("custom base URL accepted", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://custom.openrouter.example/v1",
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider: %v", err)
		}
		if p == nil {
			t.Fatal("expected a provider")
		}
	})
}
