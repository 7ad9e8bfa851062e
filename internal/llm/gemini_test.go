package llm

import "testing"

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"score":    map[string]any{"type": "integer"},
			"kind":     map[string]any{"type": "string", "enum": []any{"translate", "listening", "speaking"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "kind"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Errorf("question type = %s", schema.Properties["question"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Errorf("score type = %s", schema.Properties["score"].Type)
	}
	if got := len(schema.Properties["kind"].Enum); got != 3 {
		t.Errorf("kind enum values = %d, want 3", got)
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Errorf("options type = %s", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Errorf("options item type = %s", schema.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required fields = %d, want 2", len(schema.Required))
	}
}
