package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLessonCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	created, err := s.LessonRepo().Create(ctx, "Introduction to AI", "AI studies systems that perform intelligent tasks.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-zero lesson ID")
	}

	got, err := s.LessonRepo().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if got.Title != created.Title || got.Content != created.Content {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestLessonGetNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.LessonRepo().Get(ctx, 9999)
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if nf.Kind != "lesson" || nf.ID != 9999 {
		t.Fatalf("unexpected not-found detail: %+v", nf)
	}
}

func TestLessonList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		if _, err := s.LessonRepo().Create(ctx, title, "content"); err != nil {
			t.Fatalf("create lesson: %v", err)
		}
	}

	lessons, err := s.LessonRepo().List(ctx)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	if len(lessons) != len(titles) {
		t.Fatalf("expected %d lessons, got %d", len(titles), len(lessons))
	}
	for i := 1; i < len(lessons); i++ {
		if lessons[i].ID <= lessons[i-1].ID {
			t.Fatal("expected lessons ordered by ID ascending")
		}
	}
}

func TestLessonPreview(t *testing.T) {
	short := Lesson{Content: "Short content."}
	if short.Preview() != "Short content." {
		t.Fatalf("short preview: %q", short.Preview())
	}

	long := Lesson{Content: strings.Repeat("a", 250)}
	preview := long.Preview()
	if !strings.HasSuffix(preview, "...") {
		t.Fatalf("long preview must end with ellipsis: %q", preview)
	}
	if len(preview) != 203 {
		t.Fatalf("expected 200 chars plus ellipsis, got %d", len(preview))
	}
}

func TestUserCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	created, err := s.UserRepo().Create(ctx, "Alice", RoleAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := s.UserRepo().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Name != "Alice" || got.Role != RoleAdmin {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	_, err = s.UserRepo().Get(ctx, 9999)
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
