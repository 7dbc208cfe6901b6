package recommend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/studyhall/internal/store"
)

func TestService_RecommendNoHistory(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	user, err := s.UserRepo().Create(ctx, "Alice", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewService(s.HistoryRepo(), DefaultConfig())
	scores, err := svc.Recommend(ctx, user.ID)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(scores))
	}
}

func TestService_RecommendRanksAskedLessons(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	l1, err := s.LessonRepo().Create(ctx, "Introduction to AI", "AI basics.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	l2, err := s.LessonRepo().Create(ctx, "Machine Learning Fundamentals", "ML basics.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Bob", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	for range 3 {
		if _, err := s.HistoryRepo().Append(ctx, l1.ID, user.ID, "q", "a", false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := s.HistoryRepo().Append(ctx, l2.ID, user.ID, "q", "a", false); err != nil {
		t.Fatalf("append: %v", err)
	}

	svc := NewService(s.HistoryRepo(), DefaultConfig())
	scores, err := svc.Recommend(ctx, user.ID)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scored lessons, got %d", len(scores))
	}
	if scores[0].LessonID != l1.ID {
		t.Fatalf("expected the frequently asked lesson first, got %d", scores[0].LessonID)
	}
}
