package qa

import "fmt"

// ErrInvalidInput indicates an empty or malformed question or lesson.
// Client-fixable; never retried.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrEngineUnavailable indicates the AI provider exhausted its retries or
// failed unrecoverably. Distinct from input errors: the student should
// try again, not fix the question.
type ErrEngineUnavailable struct {
	Err error
}

func (e *ErrEngineUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("answer engine unavailable: %v", e.Err)
	}
	return "answer engine unavailable"
}

func (e *ErrEngineUnavailable) Unwrap() error { return e.Err }
