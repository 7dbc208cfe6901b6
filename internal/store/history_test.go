package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func seedLessonAndUser(t *testing.T, s *Store) (*Lesson, *User) {
	t.Helper()
	ctx := context.Background()

	lesson, err := s.LessonRepo().Create(ctx, "Deep Learning Overview", "Neural networks are layered models.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Student", RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return lesson, user
}

func TestHistoryAppend(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	rec, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, "What is a neural network?", "A layered model.", false)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("expected a non-zero record ID")
	}
	if rec.LessonID != lesson.ID || rec.UserID != user.ID {
		t.Fatalf("record references wrong entities: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
}

func TestHistoryAppendDuplicatesAllowed(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	for range 2 {
		if _, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, "Same question", "Same answer", false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := s.HistoryRepo().ByLessonAndUser(ctx, lesson.ID, user.ID)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("history is a log, expected 2 records, got %d", len(recs))
	}
}

func TestHistoryAppendForeignKeyViolation(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, _ := seedLessonAndUser(t, s)

	_, err := s.HistoryRepo().Append(ctx, lesson.ID, 9999, "q", "a", false)
	var pe *ErrPersistence
	if !errors.As(err, &pe) {
		t.Fatalf("expected ErrPersistence for missing user, got: %v", err)
	}

	_, err = s.HistoryRepo().Append(ctx, 9999, 9999, "q", "a", false)
	if !errors.As(err, &pe) {
		t.Fatalf("expected ErrPersistence for missing lesson, got: %v", err)
	}
}

func TestHistoryOrdering(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	for i := range 5 {
		if _, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, fmt.Sprintf("question %d", i), "answer", false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	asc, err := s.HistoryRepo().ByLessonAndUser(ctx, lesson.ID, user.ID)
	if err != nil {
		t.Fatalf("query asc: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i].CreatedAt.Before(asc[i-1].CreatedAt) {
			t.Fatal("ByLessonAndUser must order oldest first")
		}
		if asc[i].CreatedAt.Equal(asc[i-1].CreatedAt) && asc[i].ID < asc[i-1].ID {
			t.Fatal("equal timestamps must order by ID ascending")
		}
	}

	desc, err := s.HistoryRepo().ByUser(ctx, user.ID, 0)
	if err != nil {
		t.Fatalf("query desc: %v", err)
	}
	if len(desc) != len(asc) {
		t.Fatalf("expected %d records, got %d", len(asc), len(desc))
	}
	for i := 1; i < len(desc); i++ {
		if desc[i].CreatedAt.After(desc[i-1].CreatedAt) {
			t.Fatal("ByUser must order most recent first")
		}
	}
}

func TestHistoryByUserLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	for i := range 5 {
		if _, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, fmt.Sprintf("question %d", i), "answer", false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := s.HistoryRepo().ByUser(ctx, user.ID, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(recs))
	}
}

func TestHistoryReadIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	if _, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, "q", "a", false); err != nil {
		t.Fatalf("append: %v", err)
	}

	first, err := s.HistoryRepo().ByLessonAndUser(ctx, lesson.ID, user.ID)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := s.HistoryRepo().ByLessonAndUser(ctx, lesson.ID, user.ID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(first) != len(second) {
		t.Fatal("repeated reads with no writes must return identical results")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs between reads", i)
		}
	}
}

func TestHistoryCascadeDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	lesson, user := seedLessonAndUser(t, s)

	if _, err := s.HistoryRepo().Append(ctx, lesson.ID, user.ID, "q", "a", false); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Client().Lesson.DeleteOneID(lesson.ID).Exec(ctx); err != nil {
		t.Fatalf("delete lesson: %v", err)
	}

	recs, err := s.HistoryRepo().ByUser(ctx, user.ID, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected cascade delete to remove records, got %d", len(recs))
	}
}
