package exgen

import (
	"fmt"

	"github.com/parlolabs/parlo/internal/exercise"
)

// Validator checks a generated exercise set for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "choices".
	Name() string

	// Validate checks the exercise set and returns nil if it passes.
	Validate(exs []exercise.Exercise, input GenerateInput) *ValidationError
}

// ValidationError describes why an exercise set failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
