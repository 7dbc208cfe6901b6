package qa

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/studyhall/internal/llm"
)

func answerJSON(t *testing.T, answerable bool, answer, reason string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"answerable": answerable,
		"answer":     answer,
		"reason":     reason,
	})
	if err != nil {
		t.Fatalf("marshal canned answer: %v", err)
	}
	return raw
}

func TestEngine_Answer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: answerJSON(t, true, "A neural network is a layered model of connected units.", ""),
	})
	engine := NewEngine(mock, DefaultEngineConfig())

	payload := ContextPayload{LessonTitle: "Deep Learning Overview", Text: "Neural networks are layered models."}
	result, err := engine.Answer(context.Background(), payload, "What is a neural network?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if result.Unanswerable {
		t.Fatal("expected an answerable result")
	}
	if result.Answer == "" {
		t.Fatal("expected a non-empty answer")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "grounded-answer" {
		t.Fatal("expected the grounded-answer schema on the request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
}

func TestEngine_AnswerUnanswerable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: answerJSON(t, false, "", "the excerpt does not cover this topic"),
	})
	engine := NewEngine(mock, DefaultEngineConfig())

	payload := ContextPayload{LessonTitle: "Intro", Text: "Basic material."}
	result, err := engine.Answer(context.Background(), payload, "What year did this happen?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !result.Unanswerable {
		t.Fatal("expected the unanswerable marker")
	}
	if result.Answer != "" {
		t.Fatalf("unanswerable result must carry no answer, got %q", result.Answer)
	}
	if result.Reason == "" {
		t.Fatal("expected a reason")
	}
}

func TestEngine_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	engine := NewEngine(mock, DefaultEngineConfig())

	payload := ContextPayload{LessonTitle: "Intro", Text: "Basic material."}
	_, err := engine.Answer(context.Background(), payload, "A question")
	if err == nil {
		t.Fatal("expected an error")
	}
	var unavail *ErrEngineUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable, got: %T", err)
	}
}

func TestEngine_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	engine := NewEngine(mock, DefaultEngineConfig())

	payload := ContextPayload{LessonTitle: "Intro", Text: "Basic material."}
	_, err := engine.Answer(context.Background(), payload, "A question")
	if err == nil {
		t.Fatal("expected an error for a malformed response")
	}
	var unavail *ErrEngineUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable, got: %T", err)
	}
}

func TestEngine_CancelledContextPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: context.Canceled,
	})
	engine := NewEngine(mock, DefaultEngineConfig())

	payload := ContextPayload{LessonTitle: "Intro", Text: "Basic material."}
	_, err := engine.Answer(context.Background(), payload, "A question")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled to propagate, got: %v", err)
	}
}
