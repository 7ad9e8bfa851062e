// Package speech scores recorded pronunciation attempts and transcribes
// learner audio through a multimodal LLM provider.
package speech

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/parlolabs/parlo/internal/llm"
)

// Feedback is the result of scoring one pronunciation attempt.
type Feedback struct {
	// Score is the overall pronunciation quality, 0-100.
	Score int `json:"score"`

	// Summary is one short sentence of feedback in the learner's native
	// language.
	Summary string `json:"summary"`

	// ProblemWords lists the words the learner should retry, worst first.
	ProblemWords []string `json:"problemWords"`
}

// Recording is a captured audio clip.
type Recording struct {
	MIMEType string
	Data     []byte
}

// Analyzer scores and transcribes learner audio.
type Analyzer interface {
	// AnalyzePronunciation scores how closely the recording matches the
	// target sentence.
	AnalyzePronunciation(ctx context.Context, target, nativeLanguage string, rec Recording) (*Feedback, error)

	// Transcribe returns the Spanish text heard in the recording.
	Transcribe(ctx context.Context, rec Recording) (string, error)
}

// feedbackSchema constrains the pronunciation response.
var feedbackSchema = &llm.Schema{
	Name:        "pronunciation-feedback",
	Description: "A score and feedback for one spoken attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall pronunciation quality from 0 (unintelligible) to 100 (native-like)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "One short sentence of feedback in the learner's native language",
			},
			"problemWords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Words the learner should retry, worst first. Empty when the attempt was clean.",
			},
		},
		"required":             []any{"score", "summary", "problemWords"},
		"additionalProperties": false,
	},
}

var transcriptSchema = &llm.Schema{
	Name:        "audio-transcript",
	Description: "A verbatim transcript of the recording",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "Exactly what was said, with Spanish orthography and accents",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}

const analyzeSystemPrompt = `You are a Spanish pronunciation coach grading a recorded attempt.

Rules:
- Compare the recording against the target sentence only. Do not grade grammar or word choice beyond what was asked.
- Score 0-100: below 50 is unintelligible or a different sentence, 75 is clearly understandable with an accent, 90+ is near-native.
- An empty or silent recording scores 0.
- Keep the summary to one encouraging sentence in the learner's native language.
- List at most three problem words.`

const transcribeSystemPrompt = `Transcribe the Spanish speech in the recording verbatim. Use correct orthography and accents. If nothing intelligible was said, return an empty string.`

// Service implements Analyzer on an llm.Provider. The provider must accept
// media attachments (Gemini).
type Service struct {
	provider llm.Provider
}

// NewService creates an Analyzer backed by the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) AnalyzePronunciation(ctx context.Context, target, nativeLanguage string, rec Recording) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "pronunciation")

	req := llm.Request{
		System: analyzeSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Target sentence: %s\nLearner's native language: %s", target, nativeLanguage),
			Media:   []llm.Media{{MIMEType: rec.MIMEType, Data: rec.Data}},
		}},
		Schema:    feedbackSchema,
		MaxTokens: 256,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("pronunciation analysis failed: %w", err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, fmt.Errorf("failed to parse feedback: %w", err)
	}
	if fb.Score < 0 {
		fb.Score = 0
	}
	if fb.Score > 100 {
		fb.Score = 100
	}
	return &fb, nil
}

func (s *Service) Transcribe(ctx context.Context, rec Recording) (string, error) {
	ctx = llm.WithPurpose(ctx, "transcription")

	req := llm.Request{
		System: transcribeSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: "Transcribe this recording.",
			Media:   []llm.Media{{MIMEType: rec.MIMEType, Data: rec.Data}},
		}},
		Schema:    transcriptSchema,
		MaxTokens: 256,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse transcript: %w", err)
	}
	return out.Text, nil
}
