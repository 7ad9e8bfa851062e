package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func exerciseSchema() *Schema {
	return &Schema{
		Name:        "exercise-check",
		Description: "One generated exercise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer", "minimum": 0},
				"level":    map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1"}},
			},
			"required": []any{"question", "score"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields valid", `{"question":"Translate: hola","score":10,"level":"A1"}`, false},
		{"optional field omitted", `{"question":"Translate: adiós","score":5}`, false},
		{"required field missing", `{"question":"Translate: gracias"}`, true},
		{"wrong type", `{"question":"Translate: sí","score":"ten"}`, true},
		{"enum violation", `{"question":"Translate: no","score":3,"level":"Z9"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(exerciseSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("validateResponse: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %T (%v), want *ErrInvalidResponse", err, err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "roleplay-turns",
		Description: "Nested roleplay payload",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"speaker": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"turns": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"speaker", "turns"},
		},
	}

	valid := json.RawMessage(`{"speaker":{"name":"Sofia"},"turns":["Hola","¿Qué tal?"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"speaker":{"name":"Sofia"},"turns":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected an error for wrong array item type")
	}
}
