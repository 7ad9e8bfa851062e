package exgen

// DefaultCount is the number of exercises in a standard lesson.
const DefaultCount = 5

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated exercise set. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxKnownPhrases is the maximum number of known phrases to include
	// in the prompt.
	MaxKnownPhrases int

	// MaxRecentMistakes is the maximum number of recent mistakes to
	// include in the prompt.
	MaxRecentMistakes int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoicesValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		MaxKnownPhrases:   15,
		MaxRecentMistakes: 5,
	}
}
