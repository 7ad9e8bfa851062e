package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func anthropicErrorBody(w http.ResponseWriter, status int, errType string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":  "error",
		"error": map[string]any{"type": errType, "message": errType},
	})
}

func TestAnthropicGenerate(t *testing.T) {
	p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"question":"Translate: hello","answer":"hola"}`},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Spanish tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate an exercise."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicErrorMapping(t *testing.T) {
	t.Run("429 is rate limit", func(t *testing.T) {
		p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			anthropicErrorBody(w, http.StatusTooManyRequests, "rate_limit_error")
		})
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "hola"}},
			MaxTokens: 100,
		})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("err = %T (%v), want *ErrRateLimit", err, err)
		}
	})

	t.Run("500 is unavailable", func(t *testing.T) {
		p := anthropicAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			anthropicErrorBody(w, http.StatusInternalServerError, "api_error")
		})
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "hola"}},
			MaxTokens: 100,
		})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("err = %T (%v), want *ErrProviderUnavailable", err, err)
		}
	})
}

func TestAnthropicRefusesMedia(t *testing.T) {
	p := &AnthropicProvider{model: "claude-haiku-4-5-20251001"}
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{
			Role:  RoleUser,
			Media: []Media{{MIMEType: "audio/wav", Data: []byte{1}}},
		}},
	})
	var unsupported *ErrMediaUnsupported
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %T, want *ErrMediaUnsupported", err)
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}
