package coach

import "github.com/abhisek/kosakata/internal/llm"

// TipsSchema is the structured output the coach asks for.
var TipsSchema = &llm.Schema{
	Name:        "word-tips",
	Description: "Example sentences and memory hooks for missed Malay vocabulary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The Malay word exactly as given",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "A short, natural Malay sentence using the word",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "English translation of the example sentence",
						},
						"memory_hook": map[string]any{
							"type":        "string",
							"description": "One sentence that helps remember the meaning, e.g. the root word and what the affix does",
						},
					},
					"required":             []any{"word", "example", "translation", "memory_hook"},
					"additionalProperties": false,
				},
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One short encouraging sentence",
			},
		},
		"required":             []any{"tips", "encouragement"},
		"additionalProperties": false,
	},
}
