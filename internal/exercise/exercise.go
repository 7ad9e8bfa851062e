// Package exercise defines the exercise variants served during a lesson and
// the per-kind answer evaluation. Exercises form a tagged union: one struct,
// a Kind discriminant, and evaluation dispatched on the tag.
package exercise

import (
	"strings"
	"time"
)

// Kind discriminates the exercise variants.
type Kind string

const (
	Translate      Kind = "TRANSLATE"
	MultipleChoice Kind = "MULTIPLE_CHOICE"
	Speaking       Kind = "SPEAKING"
	Listening      Kind = "LISTENING"
	Roleplay       Kind = "ROLEPLAY"
)

// AllKinds returns the exercise kinds a lesson may mix.
func AllKinds() []Kind {
	return []Kind{Translate, MultipleChoice, Speaking, Listening, Roleplay}
}

// SpeechPassScore is the minimum pronunciation score counted as correct.
const SpeechPassScore = 75

// Expert-mode countdown lengths.
const (
	ExpertCountdown         = 20 * time.Second
	ExpertRoleplayCountdown = 30 * time.Second
)

// Exercise is one prompt within a lesson.
type Exercise struct {
	ID            string   `json:"id"`
	Kind          Kind     `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	AudioText     string   `json:"audioText,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Countdown returns the expert-mode time limit for this exercise.
func (e Exercise) Countdown() time.Duration {
	if e.Kind == Roleplay {
		return ExpertRoleplayCountdown
	}
	return ExpertCountdown
}

// SpokenText returns the text read aloud for listening/speaking prompts.
func (e Exercise) SpokenText() string {
	if e.AudioText != "" {
		return e.AudioText
	}
	if e.CorrectAnswer != "" {
		return e.CorrectAnswer
	}
	return e.Question
}

// Normalize lowercases, trims, and strips sentence punctuation so typed
// answers are compared loosely.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?', ';', ':':
			return -1
		}
		return r
	}, s)
}

// EvaluateText scores a typed or selected answer for the text-based kinds.
// Multiple choice requires the exact option; the free-text kinds compare
// normalized strings. Speaking exercises are scored via EvaluateSpeech.
func (e Exercise) EvaluateText(input string) bool {
	switch e.Kind {
	case MultipleChoice:
		return input == e.CorrectAnswer
	case Speaking:
		return false
	default:
		return Normalize(input) == Normalize(e.CorrectAnswer)
	}
}

// EvaluateSpeech scores a pronunciation-analysis result.
func EvaluateSpeech(score int) bool {
	return score >= SpeechPassScore
}
