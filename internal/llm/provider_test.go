package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider(t *testing.T) {
	t.Run("serves responses in order", func(t *testing.T) {
		mock := NewMockProvider(
			MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
			MockResponse{Content: json.RawMessage(`{"b":2}`)},
		)

		first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "uno"}}})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if string(first.Content) != `{"a":1}` {
			t.Errorf("first content = %s", first.Content)
		}
		if first.Usage.InputTokens != 10 {
			t.Errorf("input tokens = %d, want 10", first.Usage.InputTokens)
		}
		if first.StopReason != "end" {
			t.Errorf("stop reason = %q, want end", first.StopReason)
		}

		second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "dos"}}})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if string(second.Content) != `{"b":2}` {
			t.Errorf("second content = %s", second.Content)
		}
	})

	t.Run("empty queue is unavailable", func(t *testing.T) {
		_, err := NewMockProvider().Generate(context.Background(), Request{})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("err = %T, want *ErrProviderUnavailable", err)
		}
	})

	t.Run("records requests", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

		_, _ = mock.Generate(context.Background(), Request{
			System:   "tutor",
			Messages: []Message{{Role: RoleUser, Content: "hola"}},
		})

		if mock.CallCount() != 1 {
			t.Fatalf("call count = %d, want 1", mock.CallCount())
		}
		if mock.Calls[0].System != "tutor" {
			t.Errorf("recorded system = %q", mock.Calls[0].System)
		}
	})

	t.Run("canned errors pass through", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

		_, err := mock.Generate(context.Background(), Request{})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("err = %T, want *ErrRateLimit", err)
		}
	})

	t.Run("model id", func(t *testing.T) {
		if got := NewMockProvider().ModelID(); got != "mock" {
			t.Fatalf("ModelID() = %q", got)
		}
	})
}

func TestPurposeContext(t *testing.T) {
	if p := PurposeFrom(context.Background()); p != "unknown" {
		t.Fatalf("default purpose = %q, want unknown", p)
	}

	ctx := WithPurpose(context.Background(), "exercise-generation")
	if p := PurposeFrom(ctx); p != "exercise-generation" {
		t.Fatalf("purpose = %q", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "frontier"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
