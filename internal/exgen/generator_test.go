package exgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/llm"
)

func validLessonJSON(count int) json.RawMessage {
	exs := make([]map[string]any, count)
	for i := range exs {
		exs[i] = map[string]any{
			"type":          "TRANSLATE",
			"question":      "Translate to Spanish: good morning",
			"options":       []string{},
			"correctAnswer": "buenos días",
			"audioText":     "",
			"explanation":   "A greeting used before noon.",
		}
	}
	b, _ := json.Marshal(map[string]any{"exercises": exs})
	return b
}

func testInput() GenerateInput {
	return GenerateInput{
		Lesson:   lessongraph.Lesson{ID: "l1", Title: "Greetings", Type: lessongraph.TypeRegular},
		Level:    "A1",
		Language: "en",
		Count:    3,
	}
}

func TestGenerateParsesExercises(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON(3)})
	gen := New(mock, DefaultConfig())

	exs, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(exs) != 3 {
		t.Fatalf("got %d exercises, want 3", len(exs))
	}
	for i, ex := range exs {
		if ex.ID == "" {
			t.Errorf("exercise %d has no ID", i)
		}
		if ex.Kind != exercise.Translate {
			t.Errorf("exercise %d kind = %q", i, ex.Kind)
		}
		if ex.CorrectAnswer != "buenos días" {
			t.Errorf("exercise %d answer = %q", i, ex.CorrectAnswer)
		}
	}
	if exs[0].ID == exs[1].ID {
		t.Error("exercise IDs must be unique")
	}
}

func TestGenerateRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON(3)})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.KnownPhrases = []string{"hola"}
	input.RecentMistakes = []string{"confused ser and estar"}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != LessonSchema {
		t.Error("request should carry the lesson schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Greetings", "A1", "English", "hola", "ser and estar"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateCountMismatchFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON(2)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error for wrong count")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "structural" {
		t.Fatalf("err = %v, want structural validation error", err)
	}
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected provider error")
	}
}
