package exgen

import (
	"testing"

	"github.com/parlolabs/parlo/internal/exercise"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	base := exercise.Exercise{
		Kind:          exercise.Translate,
		Question:      "Translate: hello",
		CorrectAnswer: "hola",
	}

	tests := []struct {
		name   string
		mutate func(*exercise.Exercise)
		wantOK bool
	}{
		{"valid", func(e *exercise.Exercise) {}, true},
		{"empty question", func(e *exercise.Exercise) { e.Question = "" }, false},
		{"empty answer", func(e *exercise.Exercise) { e.CorrectAnswer = "" }, false},
		{"unknown kind", func(e *exercise.Exercise) { e.Kind = "GRAMMAR" }, false},
		{"listening without audio", func(e *exercise.Exercise) { e.Kind = exercise.Listening }, false},
		{"listening with audio", func(e *exercise.Exercise) {
			e.Kind = exercise.Listening
			e.AudioText = "hola"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := base
			tt.mutate(&ex)
			err := v.Validate([]exercise.Exercise{ex}, GenerateInput{Count: 1})
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}

	if err := v.Validate(nil, GenerateInput{}); err == nil {
		t.Error("empty set should fail")
	}
}

func TestChoicesValidator(t *testing.T) {
	v := &ChoicesValidator{}
	mc := func(answer string, options ...string) exercise.Exercise {
		return exercise.Exercise{
			Kind:          exercise.MultipleChoice,
			Question:      "q",
			Options:       options,
			CorrectAnswer: answer,
		}
	}

	tests := []struct {
		name   string
		ex     exercise.Exercise
		wantOK bool
	}{
		{"valid", mc("a", "a", "b", "c", "d"), true},
		{"three options", mc("a", "a", "b", "c"), false},
		{"answer not an option", mc("z", "a", "b", "c", "d"), false},
		{"duplicate option", mc("a", "a", "a", "c", "d"), false},
		{"non-mc ignored", exercise.Exercise{Kind: exercise.Translate, Question: "q", CorrectAnswer: "a"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]exercise.Exercise{tt.ex}, GenerateInput{})
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}
