package store

import "fmt"

// ErrNotFound indicates a referenced entity does not exist.
type ErrNotFound struct {
	Kind string // "lesson", "user", "qa record"
	ID   int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// ErrPersistence indicates a store write failed (constraint violation,
// connection loss). Never swallowed: callers surface it.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }
