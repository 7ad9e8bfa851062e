package exgen

import (
	"fmt"

	"github.com/parlolabs/parlo/internal/exercise"
)

// StructuralValidator checks that required fields are present and enum
// values are valid, across the whole set.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(exs []exercise.Exercise, input GenerateInput) *ValidationError {
	if len(exs) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "exercise list is empty",
			Retryable: true,
		}
	}
	if input.Count > 0 && len(exs) != input.Count {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d exercises, want %d", len(exs), input.Count),
			Retryable: true,
		}
	}

	valid := map[exercise.Kind]bool{}
	for _, k := range exercise.AllKinds() {
		valid[k] = true
	}

	for i, ex := range exs {
		if !valid[ex.Kind] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d has unknown type %q", i, ex.Kind),
				Retryable: true,
			}
		}
		if ex.Question == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d has an empty question", i),
				Retryable: true,
			}
		}
		if ex.CorrectAnswer == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d has an empty correct answer", i),
				Retryable: true,
			}
		}
		if (ex.Kind == exercise.Listening || ex.Kind == exercise.Speaking) && ex.AudioText == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d (%s) has no audio text", i, ex.Kind),
				Retryable: true,
			}
		}
	}
	return nil
}

// ChoicesValidator checks multiple-choice option sets: exactly 4 options,
// one of which matches the correct answer, and no options on other types.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(exs []exercise.Exercise, _ GenerateInput) *ValidationError {
	for i, ex := range exs {
		if ex.Kind != exercise.MultipleChoice {
			continue
		}
		if len(ex.Options) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d has %d options, want 4", i, len(ex.Options)),
				Retryable: true,
			}
		}
		found := false
		seen := map[string]bool{}
		for _, opt := range ex.Options {
			if opt == ex.CorrectAnswer {
				found = true
			}
			if seen[opt] {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("exercise %d has duplicate option %q", i, opt),
					Retryable: true,
				}
			}
			seen[opt] = true
		}
		if !found {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exercise %d: no option matches the correct answer", i),
				Retryable: true,
			}
		}
	}
	return nil
}
