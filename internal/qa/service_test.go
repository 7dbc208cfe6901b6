package qa

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/llm"
	"github.com/abhisek/studyhall/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestService(t *testing.T, s *store.Store, mock *llm.MockProvider) *Service {
	t.Helper()
	provider := llm.WithRetry(mock, llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  1,
	})
	engine := NewEngine(provider, DefaultEngineConfig())
	return NewService(s.LessonRepo(), s.HistoryRepo(), engine, DefaultContextConfig(), zap.NewNop())
}

func TestService_AnswerRecordsHistory(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lesson, err := s.LessonRepo().Create(ctx, "Deep Learning Overview", "Neural networks are layered models of connected units that learn from examples.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Alice", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: answerJSON(t, true, "A neural network is a layered model of connected units.", ""),
	})
	svc := newTestService(t, s, mock)
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	outcome, err := svc.Answer(ctx, id, lesson.ID, "What is a neural network?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if outcome.Unanswerable {
		t.Fatal("expected an answerable outcome")
	}
	if outcome.Record == nil || outcome.Record.ID == 0 {
		t.Fatal("expected a persisted record")
	}
	if outcome.Record.Question != "What is a neural network?" {
		t.Fatalf("unexpected recorded question: %q", outcome.Record.Question)
	}

	records, err := svc.History(ctx, id, lesson.ID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Answer != outcome.Record.Answer {
		t.Fatal("history record does not match the returned record")
	}
}

func TestService_AnswerUnanswerableIsRecorded(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lesson, err := s.LessonRepo().Create(ctx, "Introduction to AI", "AI studies systems that perform tasks requiring intelligence.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Bob", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: answerJSON(t, false, "", "the lesson does not cover pricing"),
	})
	svc := newTestService(t, s, mock)
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	outcome, err := svc.Answer(ctx, id, lesson.ID, "How much does a GPU cost?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !outcome.Unanswerable {
		t.Fatal("expected the unanswerable marker")
	}
	if !outcome.Record.Unanswerable {
		t.Fatal("expected the record to carry the unanswerable marker")
	}
	if outcome.Record.Answer != "" {
		t.Fatalf("unanswerable record must carry no answer, got %q", outcome.Record.Answer)
	}
}

func TestService_ProviderFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lesson, err := s.LessonRepo().Create(ctx, "Machine Learning Fundamentals", "Models learn patterns from data.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Carol", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Empty queue: every attempt fails, retries included.
	mock := llm.NewMockProvider()
	svc := newTestService(t, s, mock)
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	_, err = svc.Answer(ctx, id, lesson.ID, "What is overfitting?")
	if err == nil {
		t.Fatal("expected an error when the provider is down")
	}
	var unavail *ErrEngineUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable, got: %T", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 attempts, got %d", mock.CallCount())
	}

	records, err := svc.History(ctx, id, lesson.ID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records after a failed request, got %d", len(records))
	}
}

func TestService_BlankQuestionRejectedBeforeProviderCall(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lesson, err := s.LessonRepo().Create(ctx, "Intro", "Some content.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Dave", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	mock := llm.NewMockProvider()
	svc := newTestService(t, s, mock)
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	_, err = svc.Answer(ctx, id, lesson.ID, "   \n ")
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("invalid input must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestService_UnknownLessonRejectedBeforeProviderCall(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	user, err := s.UserRepo().Create(ctx, "Eve", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	mock := llm.NewMockProvider()
	svc := newTestService(t, s, mock)
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	_, err = svc.Answer(ctx, id, 9999, "What is this?")
	var nf *store.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("missing lesson must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestService_HistoryRequiresLesson(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	user, err := s.UserRepo().Create(ctx, "Frank", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := newTestService(t, s, llm.NewMockProvider())
	id := Identity{UserID: user.ID, Role: store.RoleStudent}

	_, err = svc.History(ctx, id, 4242)
	var nf *store.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestService_HistoryWriteFailureDiscardsAnswer(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	lesson, err := s.LessonRepo().Create(ctx, "Intro", "Some content.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: answerJSON(t, true, "An answer.", ""),
	})
	svc := newTestService(t, s, mock)

	// User 9999 does not exist, so the insert violates the foreign key.
	id := Identity{UserID: 9999, Role: store.RoleStudent}

	_, err = svc.Answer(ctx, id, lesson.ID, "What is this?")
	if err == nil {
		t.Fatal("expected an error when the history write fails")
	}
	var pe *store.ErrPersistence
	if !errors.As(err, &pe) {
		t.Fatalf("expected ErrPersistence, got: %v", err)
	}
}
