// Package exgen generates lesson exercises with an LLM provider and
// validates them before they reach the session.
package exgen

import (
	"context"

	"github.com/parlolabs/parlo/internal/exercise"
)

// Generator produces lesson exercises using an LLM provider.
type Generator interface {
	// Generate produces the exercise list for one lesson attempt.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) ([]exercise.Exercise, error)
}
