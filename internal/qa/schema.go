package qa

import "github.com/abhisek/studyhall/internal/llm"

// AnswerSchema is the structured output contract for answer generation.
// The model must state explicitly when the excerpt cannot ground an
// answer instead of inventing one.
var AnswerSchema = &llm.Schema{
	Name:        "grounded-answer",
	Description: "An answer to a student's question, grounded in the supplied lesson excerpt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answerable": map[string]any{
				"type":        "boolean",
				"description": "Whether the lesson excerpt contains enough information to answer",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The answer, empty when answerable is false",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "When answerable is false, a short note on what is missing",
			},
		},
		"required":             []any{"answerable", "answer", "reason"},
		"additionalProperties": false,
	},
}
