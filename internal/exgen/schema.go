package exgen

import "github.com/parlolabs/parlo/internal/llm"

// LessonSchema defines the JSON schema for LLM exercise generation responses.
var LessonSchema = &llm.Schema{
	Name:        "lesson-exercises",
	Description: "A set of Spanish practice exercises for one lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercises": map[string]any{
				"type":        "array",
				"description": "The exercises, in the order they are served",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"TRANSLATE", "MULTIPLE_CHOICE", "SPEAKING", "LISTENING", "ROLEPLAY"},
							"description": "How the learner answers this exercise",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt shown to the learner, written in their native language where instructions are needed",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for MULTIPLE_CHOICE. Empty array for all other types.",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For MULTIPLE_CHOICE: the text of the correct option.",
						},
						"audioText": map[string]any{
							"type":        "string",
							"description": "The Spanish text to speak aloud for LISTENING and SPEAKING exercises. Empty for other types.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A one-sentence explanation of the answer, shown after the learner responds",
						},
					},
					"required":             []any{"type", "question", "options", "correctAnswer", "audioText", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"exercises"},
		"additionalProperties": false,
	},
}
