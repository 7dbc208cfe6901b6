package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func answerTestSchema() *Schema {
	return &Schema{
		Name:        "test-answer",
		Description: "A grounded answer object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answerable": map[string]any{"type": "boolean"},
				"answer":     map[string]any{"type": "string"},
				"reason":     map[string]any{"type": "string"},
			},
			"required": []any{"answerable", "answer"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answerable":true,"answer":"Photosynthesis converts light to energy.","reason":""}`)
	if err := validateResponse(answerTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"answerable":false,"answer":""}`)
	if err := validateResponse(answerTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"answer":"incomplete"}`)
	err := validateResponse(answerTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"answerable":"yes","answer":"x"}`)
	err := validateResponse(answerTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong field type")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := validateResponse(answerTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`anything goes`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected nil schema to skip validation, got: %v", err)
	}
}
