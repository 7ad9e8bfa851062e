// Package llm abstracts the hosted model APIs Parlo generates exercises
// and scores pronunciation with. Callers build a Request, every provider
// answers with schema-validated JSON, and the factory stacks retry and
// event-logging middleware on top of whichever backend is configured.
package llm

import (
	"context"
	"encoding/json"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Media is an inline attachment, such as the learner's recorded audio.
// MIMEType names the payload ("audio/wav"); Data is sent inline.
type Media struct {
	MIMEType string
	Data     []byte
}

// Message is one turn of conversation. Most Parlo requests are single
// turn: one user message carrying the generation prompt. Text-only
// providers reject messages that carry Media.
type Message struct {
	Role    Role
	Content string
	Media   []Media
}

// Schema asks the provider for structured output. Name is kebab-case
// ("spanish-exercise") and doubles as the tool or schema name on
// providers that need one. Definition is a plain JSON Schema map.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Request is everything a single generation needs.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far.
	Messages []Message

	// Schema, when set, makes the provider return JSON conforming to it
	// via its native structured-output mechanism. When nil the response
	// Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the model's output. Content is validated JSON when the
// request carried a Schema, raw text otherwise. StopReason is normalized
// to "end" or "max_tokens".
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Provider is implemented by every model backend.
type Provider interface {
	// Generate runs one request and returns structured output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

func hasMedia(req Request) bool {
	for _, m := range req.Messages {
		if len(m.Media) > 0 {
			return true
		}
	}
	return false
}
