package exgen

import (
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/profile"
)

// GenerateInput holds all context needed to generate a lesson's exercises.
type GenerateInput struct {
	// Lesson is the unit the exercises belong to. Its title and type steer
	// the topic and the exercise mix (boss and roleplay lessons differ).
	Lesson lessongraph.Lesson

	// Level is the learner's CEFR level, controlling vocabulary and grammar
	// complexity.
	Level profile.CEFRLevel

	// Language is the learner's native language; prompts and explanations
	// are written in it.
	Language profile.Language

	// Count is how many exercises to generate.
	Count int

	// KnownPhrases contains phrases the learner has already saved. Used to
	// bias generation toward review and away from pure repetition.
	KnownPhrases []string

	// RecentMistakes contains descriptions of the learner's recent wrong
	// answers, most recent last. Empty slice if no history.
	RecentMistakes []string
}
