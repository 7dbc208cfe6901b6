package store

import (
	"context"
	"time"
)

// LessonRepo provides read and create access to lessons. The Q&A pipeline
// only reads; creation serves the admin publishing route and seeding.
type LessonRepo interface {
	// Create stores a new lesson.
	Create(ctx context.Context, title, content string) (*Lesson, error)

	// Get returns the lesson with the given ID, or *ErrNotFound.
	Get(ctx context.Context, id int) (*Lesson, error)

	// List returns all lessons ordered by ID ascending.
	List(ctx context.Context) ([]Lesson, error)
}

// UserRepo provides access to user accounts.
type UserRepo interface {
	// Create stores a new user.
	Create(ctx context.Context, name string, role Role) (*User, error)

	// Get returns the user with the given ID, or *ErrNotFound.
	Get(ctx context.Context, id int) (*User, error)
}

// HistoryRepo manages the append-only Q&A log.
type HistoryRepo interface {
	// Append writes one complete record in a single insert. Either the
	// full (question, answer) pair becomes visible or nothing does.
	// Write failures surface as *ErrPersistence.
	Append(ctx context.Context, lessonID, userID int, question, answer string, unanswerable bool) (*QARecord, error)

	// ByLessonAndUser returns the records for one (lesson, user) pair in
	// chronological order (oldest first).
	ByLessonAndUser(ctx context.Context, lessonID, userID int) ([]QARecord, error)

	// ByUser returns the user's most recent records first, capped at
	// limit (0 = unlimited).
	ByUser(ctx context.Context, userID, limit int) ([]QARecord, error)
}

// QueryOpts configures LLM event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LLMRequestEventData captures one AI provider call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded provider call.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates provider calls by purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates provider calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the LLM audit log.
type EventRepo interface {
	// AppendLLMRequest records an AI provider call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
