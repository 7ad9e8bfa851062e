package speech

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/parlolabs/parlo/internal/llm"
)

func TestAnalyzePronunciation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":82,"summary":"Nice rhythm, watch the rolled r.","problemWords":["perro"]}`),
	})
	svc := NewService(mock)

	rec := Recording{MIMEType: "audio/wav", Data: []byte{1, 2, 3}}
	fb, err := svc.AnalyzePronunciation(context.Background(), "El perro corre", "English", rec)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if fb.Score != 82 {
		t.Errorf("score = %d, want 82", fb.Score)
	}
	if len(fb.ProblemWords) != 1 || fb.ProblemWords[0] != "perro" {
		t.Errorf("problem words = %v", fb.ProblemWords)
	}

	req := mock.Calls[0]
	if len(req.Messages[0].Media) != 1 || req.Messages[0].Media[0].MIMEType != "audio/wav" {
		t.Error("request should attach the recording")
	}
	if !strings.Contains(req.Messages[0].Content, "El perro corre") {
		t.Error("request should name the target sentence")
	}
}

func TestAnalyzeClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":140,"summary":"","problemWords":[]}`),
	})
	svc := NewService(mock)

	fb, err := svc.AnalyzePronunciation(context.Background(), "hola", "English", Recording{MIMEType: "audio/wav"})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Score != 100 {
		t.Errorf("score = %d, want clamped to 100", fb.Score)
	}
}

func TestTranscribe(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"¿Dónde está la estación?"}`),
	})
	svc := NewService(mock)

	text, err := svc.Transcribe(context.Background(), Recording{MIMEType: "audio/wav", Data: []byte{1}})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "¿Dónde está la estación?" {
		t.Errorf("transcript = %q", text)
	}
}

func TestProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock)

	if _, err := svc.AnalyzePronunciation(context.Background(), "hola", "English", Recording{}); err == nil {
		t.Fatal("expected provider error")
	}
}
