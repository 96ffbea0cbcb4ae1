package coach

import "github.com/idelarosa/subjunto/internal/llm"

// ExplanationSchema defines the JSON schema for LLM answer explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "A short, encouraging explanation of a Spanish subjunctive answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One sentence naming what went wrong (or right)",
			},
			"detail": map[string]any{
				"type":        "string",
				"description": "Two to three sentences walking through the conjugation rule that produces the correct form",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One memorable tip for next time",
			},
		},
		"required":             []any{"summary", "detail", "tip"},
		"additionalProperties": false,
	},
}
