// Package chat drives a free-form Spanish conversation with an LLM
// tutor pitched at the learner's level.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/profile"
)

// Turn is one utterance in the conversation.
type Turn struct {
	Role llm.Role
	Text string
}

// Learner describes the person the tutor is talking to.
type Learner struct {
	Level          profile.CEFRLevel
	NativeLanguage profile.Language
}

// Tutor produces the next tutor reply for a conversation.
type Tutor interface {
	Reply(ctx context.Context, learner Learner, history []Turn) (string, error)
}

// MaxHistory caps how many turns are sent per request; older turns are
// dropped from the front so long conversations stay inside the context
// window.
const MaxHistory = 20

const systemPromptTemplate = `You are a friendly Spanish conversation partner for a %s-level learner.

Rules:
- Reply in Spanish, at most three sentences, using vocabulary and grammar appropriate for %s level.
- When the learner makes a mistake, give the corrected phrasing in parentheses before continuing the conversation.
- If the learner seems stuck, ask a simple follow-up question.
- Only switch to %s when the learner explicitly asks for an explanation.`

// Service implements Tutor on an llm.Provider.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a Tutor backed by the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 512}
}

func (s *Service) Reply(ctx context.Context, learner Learner, history []Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, "practice-chat")

	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	msgs := make([]llm.Message, len(history))
	for i, t := range history {
		msgs[i] = llm.Message{Role: t.Role, Content: t.Text}
	}

	req := llm.Request{
		System: fmt.Sprintf(systemPromptTemplate,
			learner.Level, learner.Level, profile.LanguageName(learner.NativeLanguage)),
		Messages:    msgs,
		MaxTokens:   s.maxTokens,
		Temperature: 0.8,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat reply failed: %w", err)
	}

	// Schema-less responses are raw text; some backends still wrap the
	// text in a JSON string.
	text := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(resp.Content)), `"`))
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty chat reply")}
	}
	return text, nil
}
