package exgen

import (
	"fmt"
	"strings"

	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/profile"
)

const systemPrompt = `You are a Spanish teacher creating practice exercises for an adult learner.

Rules:
- Generate exercises appropriate for the given CEFR level. Vocabulary and grammar must not exceed it.
- Write instructions and explanations in the learner's native language. The Spanish being practiced stays in Spanish.
- TRANSLATE: the learner types a translation. The question names the direction ("Translate to Spanish: ...").
- MULTIPLE_CHOICE: provide exactly 4 options where exactly one is correct. Distractors should reflect common learner confusions (gender, conjugation, false friends), not random words.
- LISTENING: the learner hears audioText and types what they heard. audioText and correctAnswer are the same Spanish sentence.
- SPEAKING: the learner reads audioText aloud. correctAnswer repeats audioText.
- ROLEPLAY: the question sets a scene and a line of dialogue; the learner types a natural in-character reply in Spanish. correctAnswer is the most natural reply.
- Keep every sentence short and conversational. No textbook filler.
- Do not reuse phrases from the "already known" list as the main content of an exercise.
- Weave the learner's recent mistakes back in so they get another attempt at what they got wrong.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson: %s\n", input.Lesson.Title)
	fmt.Fprintf(&b, "Lesson type: %s\n", lessonTypeLabel(input.Lesson.Type))
	fmt.Fprintf(&b, "CEFR level: %s\n", input.Level)
	fmt.Fprintf(&b, "Native language: %s\n", profile.LanguageName(input.Language))
	fmt.Fprintf(&b, "Exercise count: %d\n", input.Count)
	b.WriteString("Exercise mix: " + mixFor(input.Lesson.Type) + "\n")

	b.WriteString("\nPhrases already known:\n")
	b.WriteString(buildList(input.KnownPhrases, cfg.MaxKnownPhrases))

	b.WriteString("\nRecent mistakes:\n")
	b.WriteString(buildList(input.RecentMistakes, cfg.MaxRecentMistakes))

	return b.String()
}

func lessonTypeLabel(t lessongraph.Type) string {
	switch t {
	case lessongraph.TypeBoss:
		return "boss (review of everything so far, harder than usual)"
	case lessongraph.TypeStory:
		return "story (exercises follow one continuous narrative)"
	case lessongraph.TypeRoleplay:
		return "roleplay (a single conversation scene)"
	default:
		return "regular"
	}
}

func mixFor(t lessongraph.Type) string {
	switch t {
	case lessongraph.TypeRoleplay:
		return "all ROLEPLAY, one conversation from greeting to goodbye"
	case lessongraph.TypeBoss:
		return "every type at least once, no two consecutive exercises of the same type"
	default:
		return "mostly TRANSLATE and MULTIPLE_CHOICE, with at least one LISTENING and one SPEAKING"
	}
}

// buildList formats a context list for the prompt, keeping the most recent
// max entries. Returns "None" for an empty list.
func buildList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}

	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
