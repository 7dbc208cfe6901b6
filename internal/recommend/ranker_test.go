package recommend

import (
	"testing"
	"time"

	"github.com/abhisek/studyhall/internal/store"
)

func rec(lessonID int, createdAt time.Time) store.QARecord {
	return store.QARecord{LessonID: lessonID, CreatedAt: createdAt}
}

func TestRank_EmptyHistory(t *testing.T) {
	scores := Rank(nil, time.Now(), DefaultConfig())
	if len(scores) != 0 {
		t.Fatalf("expected no scores for empty history, got %d", len(scores))
	}
}

func TestRank_RecentFrequencyBeatsOldSingle(t *testing.T) {
	now := time.Now()
	records := []store.QARecord{
		rec(1, now.Add(-1*time.Hour)),
		rec(1, now.Add(-2*time.Hour)),
		rec(1, now.Add(-3*time.Hour)),
		rec(2, now.Add(-30*24*time.Hour)),
	}

	scores := Rank(records, now, DefaultConfig())
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].LessonID != 1 {
		t.Fatalf("expected lesson 1 first, got %d", scores[0].LessonID)
	}
	if scores[0].Score <= scores[1].Score {
		t.Fatalf("expected lesson 1 (%f) to outrank lesson 2 (%f)", scores[0].Score, scores[1].Score)
	}
}

func TestRank_RecencyBreaksEqualFrequency(t *testing.T) {
	now := time.Now()
	records := []store.QARecord{
		rec(1, now.Add(-1*time.Hour)),
		rec(2, now.Add(-20*24*time.Hour)),
	}

	scores := Rank(records, now, DefaultConfig())
	if scores[0].LessonID != 1 {
		t.Fatalf("expected the recent lesson first, got %d", scores[0].LessonID)
	}
}

func TestRank_TiesBreakByLessonID(t *testing.T) {
	now := time.Now()
	same := now.Add(-time.Hour)
	records := []store.QARecord{
		rec(7, same),
		rec(3, same),
		rec(5, same),
	}

	scores := Rank(records, now, DefaultConfig())
	want := []int{3, 5, 7}
	for i, w := range want {
		if scores[i].LessonID != w {
			t.Fatalf("position %d: expected lesson %d, got %d", i, w, scores[i].LessonID)
		}
	}
}

func TestRank_BoundedByMaxRecords(t *testing.T) {
	now := time.Now()
	cfg := Config{MaxRecords: 2, HalfLife: 7 * 24 * time.Hour}

	// Most recent first: two records on lesson 1, then an older flood on
	// lesson 2 that the bound must exclude.
	records := []store.QARecord{
		rec(1, now.Add(-1*time.Hour)),
		rec(1, now.Add(-2*time.Hour)),
		rec(2, now.Add(-3*time.Hour)),
		rec(2, now.Add(-4*time.Hour)),
		rec(2, now.Add(-5*time.Hour)),
	}

	scores := Rank(records, now, cfg)
	if len(scores) != 1 {
		t.Fatalf("expected only lesson 1 within the bound, got %d lessons", len(scores))
	}
	if scores[0].LessonID != 1 {
		t.Fatalf("expected lesson 1, got %d", scores[0].LessonID)
	}
}

func TestRank_FutureTimestampsClamped(t *testing.T) {
	now := time.Now()
	records := []store.QARecord{
		rec(1, now.Add(time.Hour)),
	}

	scores := Rank(records, now, DefaultConfig())
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if scores[0].Score > 1.0 {
		t.Fatalf("a clock-skewed record must not weigh more than a fresh one, got %f", scores[0].Score)
	}
}

func TestRank_Deterministic(t *testing.T) {
	now := time.Now()
	records := []store.QARecord{
		rec(4, now.Add(-1*time.Hour)),
		rec(2, now.Add(-1*time.Hour)),
		rec(4, now.Add(-2*time.Hour)),
		rec(9, now.Add(-3*time.Hour)),
	}

	a := Rank(records, now, DefaultConfig())
	b := Rank(records, now, DefaultConfig())
	if len(a) != len(b) {
		t.Fatal("rank length differs between identical calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
