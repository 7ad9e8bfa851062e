package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/profile"
)

func testLearner() Learner {
	return Learner{Level: profile.LevelB1, NativeLanguage: "en"}
}

func TestReplyRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`¡Muy bien!`)})
	svc := NewService(mock)

	history := []Turn{
		{Role: llm.RoleUser, Text: "Hola, ¿cómo estás?"},
		{Role: llm.RoleAssistant, Text: "Muy bien, ¿y tú?"},
		{Role: llm.RoleUser, Text: "Bien, gracias."},
	}
	reply, err := svc.Reply(context.Background(), testLearner(), history)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "¡Muy bien!" {
		t.Fatalf("reply = %q", reply)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat requests must not carry a schema")
	}
	for _, want := range []string{"B1", "English"} {
		if !strings.Contains(req.System, want) {
			t.Errorf("system prompt missing %q:\n%s", want, req.System)
		}
	}
	if len(req.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("message 1 role = %q", req.Messages[1].Role)
	}
}

func TestReplyTruncatesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`Claro.`)})
	svc := NewService(mock)

	history := make([]Turn, MaxHistory+8)
	for i := range history {
		history[i] = Turn{Role: llm.RoleUser, Text: "hola"}
	}
	history[len(history)-1].Text = "adiós"

	if _, err := svc.Reply(context.Background(), testLearner(), history); err != nil {
		t.Fatal(err)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != MaxHistory {
		t.Fatalf("got %d messages, want %d", len(msgs), MaxHistory)
	}
	if msgs[len(msgs)-1].Content != "adiós" {
		t.Error("truncation must drop the oldest turns, not the newest")
	}
}

func TestReplyEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`  ""  `)})
	svc := NewService(mock)

	_, err := svc.Reply(context.Background(), testLearner(), []Turn{{Role: llm.RoleUser, Text: "hola"}})
	if err == nil {
		t.Fatal("expected an error for an empty reply")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}
