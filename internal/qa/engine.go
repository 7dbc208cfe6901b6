package qa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/studyhall/internal/llm"
)

// EngineConfig holds answer generation settings.
type EngineConfig struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single answer generation, retries included. A
	// stalled provider cannot hold the request open past this.
	Timeout time.Duration
}

// DefaultEngineConfig returns sensible defaults for answer generation.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxTokens:   512,
		Temperature: 0.2,
		Timeout:     30 * time.Second,
	}
}

// AnswerResult is the outcome of one answer generation.
type AnswerResult struct {
	// Answer is the generated text. Empty when Unanswerable is set.
	Answer string

	// Unanswerable is set when the model reports the excerpt cannot
	// ground an answer. Reason says what was missing.
	Unanswerable bool
	Reason       string

	// Model is the model that served the request.
	Model string
}

// Engine generates grounded answers through an AI provider. Persistence
// is the caller's responsibility: the only side effect here is the
// outbound provider call.
type Engine struct {
	provider llm.Provider
	cfg      EngineConfig
}

// NewEngine creates an answer engine on top of a provider. The provider
// is expected to carry the retry decorator already.
func NewEngine(provider llm.Provider, cfg EngineConfig) *Engine {
	return &Engine{provider: provider, cfg: cfg}
}

type answerOutput struct {
	Answerable bool   `json:"answerable"`
	Answer     string `json:"answer"`
	Reason     string `json:"reason"`
}

// Answer sends the (context, question) pair to the provider and
// post-processes the structured response. Provider failures surface as
// *ErrEngineUnavailable; a cancelled caller context propagates as-is so
// the caller can skip persistence.
func (e *Engine) Answer(ctx context.Context, payload ContextPayload, question string) (*AnswerResult, error) {
	ctx = llm.WithPurpose(ctx, "qa-answer")

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerUserMessage(payload, question)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &ErrEngineUnavailable{Err: err}
	}

	var out answerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrEngineUnavailable{Err: fmt.Errorf("parse answer response: %w", err)}
	}

	result := &AnswerResult{
		Model: resp.Model,
	}
	if !out.Answerable {
		result.Unanswerable = true
		result.Reason = out.Reason
		return result, nil
	}

	result.Answer = out.Answer
	return result, nil
}
