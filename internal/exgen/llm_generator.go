package exgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// lessonOutput is the raw LLM response before validation.
type lessonOutput struct {
	Exercises []exerciseOutput `json:"exercises"`
}

type exerciseOutput struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	AudioText     string   `json:"audioText"`
	Explanation   string   `json:"explanation"`
}

// Generate produces the exercise list for one lesson attempt.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]exercise.Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-generation")

	if input.Count == 0 {
		input.Count = DefaultCount
	}
	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      LessonSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw lessonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	exs := make([]exercise.Exercise, len(raw.Exercises))
	for i, e := range raw.Exercises {
		exs[i] = exercise.Exercise{
			ID:            uuid.New().String(),
			Kind:          exercise.Kind(e.Type),
			Question:      e.Question,
			Options:       e.Options,
			CorrectAnswer: e.CorrectAnswer,
			AudioText:     e.AudioText,
			Explanation:   e.Explanation,
		}
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(exs, input); verr != nil {
			return nil, verr
		}
	}

	return exs, nil
}
