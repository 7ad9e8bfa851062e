package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "gpt-4o-mini",
	}
}

func openaiErrorBody(w http.ResponseWriter, status int, errType string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"type": errType, "message": errType},
	})
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"question":"Translate: hello","answer":"hola"}`,
				},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
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
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIErrorMapping(t *testing.T) {
	t.Run("429 is rate limit", func(t *testing.T) {
		p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			openaiErrorBody(w, http.StatusTooManyRequests, "tokens")
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
		p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			openaiErrorBody(w, http.StatusInternalServerError, "server_error")
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

func TestOpenAIRefusesMedia(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
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

func TestOpenAIConstruction(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
			t.Fatal("expected an error without an API key")
		}
	})

	t.Run("base URL override", func(t *testing.T) {
		p, err := NewOpenAIProvider(OpenAIConfig{
			APIKey:  "test-key",
			Model:   "gpt-4o",
			BaseURL: "https://openrouter.ai/api/v1",
		})
		if err != nil {
			t.Fatalf("NewOpenAIProvider: %v", err)
		}
		if p.ModelID() != "gpt-4o" {
			t.Fatalf("ModelID() = %q, want gpt-4o", p.ModelID())
		}
	})
}
