package exercise

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hola", "hola"},
		{"  Hola, mundo!  ", "hola mundo"},
		{"¿Qué tal?", "¿qué tal"},
		{"Bien.", "bien"},
		{"a;b:c", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvaluateTextFreeForm(t *testing.T) {
	ex := Exercise{Kind: Translate, CorrectAnswer: "Buenos días"}
	tests := []struct {
		input string
		want  bool
	}{
		{"Buenos días", true},
		{"buenos días", true},
		{"  buenos días.  ", true},
		{"buenos días!", true},
		{"buenas noches", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ex.EvaluateText(tt.input); got != tt.want {
			t.Errorf("EvaluateText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEvaluateTextMultipleChoiceIsExact(t *testing.T) {
	ex := Exercise{
		Kind:          MultipleChoice,
		Options:       []string{"el gato", "el perro", "la casa"},
		CorrectAnswer: "el gato",
	}
	if !ex.EvaluateText("el gato") {
		t.Error("exact option should be correct")
	}
	if ex.EvaluateText("El Gato") {
		t.Error("multiple choice must not normalize case")
	}
	if ex.EvaluateText("el gato.") {
		t.Error("multiple choice must not strip punctuation")
	}
}

func TestEvaluateTextSpeakingNeverMatchesText(t *testing.T) {
	ex := Exercise{Kind: Speaking, CorrectAnswer: "hola"}
	if ex.EvaluateText("hola") {
		t.Error("speaking exercises are scored by pronunciation, not text")
	}
}

func TestEvaluateSpeech(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{74, false},
		{75, true},
		{100, true},
	}
	for _, tt := range tests {
		if got := EvaluateSpeech(tt.score); got != tt.want {
			t.Errorf("EvaluateSpeech(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestCountdown(t *testing.T) {
	if got := (Exercise{Kind: Translate}).Countdown(); got != 20*time.Second {
		t.Errorf("translate countdown = %v, want 20s", got)
	}
	if got := (Exercise{Kind: Roleplay}).Countdown(); got != 30*time.Second {
		t.Errorf("roleplay countdown = %v, want 30s", got)
	}
}

func TestSpokenText(t *testing.T) {
	ex := Exercise{Kind: Listening, Question: "q", CorrectAnswer: "ca", AudioText: "at"}
	if got := ex.SpokenText(); got != "at" {
		t.Errorf("SpokenText = %q, want audio text", got)
	}
	ex.AudioText = ""
	if got := ex.SpokenText(); got != "ca" {
		t.Errorf("SpokenText = %q, want correct answer fallback", got)
	}
	ex.CorrectAnswer = ""
	if got := ex.SpokenText(); got != "q" {
		t.Errorf("SpokenText = %q, want question fallback", got)
	}
}
