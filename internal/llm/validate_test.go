package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = &Schema{
	Name:        "test-tips",
	Description: "Tips for missed words",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"tips"},
		"properties": map[string]any{
			"tips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"word", "tip"},
					"properties": map[string]any{
						"word": map[string]any{"type": "string"},
						"tip":  map[string]any{"type": "string"},
						"kind": map[string]any{"type": "string", "enum": []any{"affix", "meaning", "spelling"}},
					},
				},
			},
		},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"tips":[{"word":"makan","tip":"eat","kind":"meaning"}]}`, false},
		{"optional omitted", `{"tips":[{"word":"makan","tip":"eat"}]}`, false},
		{"empty list", `{"tips":[]}`, false},
		{"missing required", `{"tips":[{"word":"makan"}]}`, true},
		{"wrong type", `{"tips":"makan"}`, true},
		{"bad enum", `{"tips":[{"word":"makan","tip":"eat","kind":"grammar"}]}`, true},
		{"extra property", `{"tips":[],"score":3}`, true},
		{"malformed", `{"tips":[`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			assert.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage("not json")))
}
