package qa

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studyhall/internal/store"
)

func testContextConfig() ContextConfig {
	return ContextConfig{MaxContextChars: 400, SegmentChars: 100}
}

func TestBuildContext_RejectsEmptyQuestion(t *testing.T) {
	lesson := &store.Lesson{Title: "Intro", Content: "Some content."}

	for _, q := range []string{"", "   ", "\n\t "} {
		_, err := BuildContext(lesson, q, testContextConfig())
		if err == nil {
			t.Fatalf("expected error for question %q", q)
		}
		var inv *ErrInvalidInput
		if !errors.As(err, &inv) {
			t.Fatalf("expected ErrInvalidInput, got: %T", err)
		}
	}
}

func TestBuildContext_RejectsEmptyContent(t *testing.T) {
	lesson := &store.Lesson{Title: "Empty", Content: "  \n "}
	_, err := BuildContext(lesson, "What is this?", testContextConfig())
	if err == nil {
		t.Fatal("expected error for empty content")
	}
	var inv *ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidInput, got: %T", err)
	}
}

func TestBuildContext_ShortContentPassesThrough(t *testing.T) {
	lesson := &store.Lesson{Title: "Short", Content: "Neural networks are layered models."}
	payload, err := BuildContext(lesson, "What is a neural network?", testContextConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Truncated {
		t.Fatal("short content should not be marked truncated")
	}
	if payload.Text != lesson.Content {
		t.Fatalf("expected full content, got %q", payload.Text)
	}
}

func TestBuildContext_NeverExceedsCap(t *testing.T) {
	long := strings.Repeat("Filler sentence about many topics. ", 200)
	lesson := &store.Lesson{Title: "Long", Content: long}

	cfg := testContextConfig()
	payload, err := BuildContext(lesson, "filler topics", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.Truncated {
		t.Fatal("expected truncation for long content")
	}
	if len(payload.Text) > cfg.MaxContextChars {
		t.Fatalf("payload %d chars exceeds cap %d", len(payload.Text), cfg.MaxContextChars)
	}
}

func TestBuildContext_KeepsOverlappingSegment(t *testing.T) {
	// Bury the relevant paragraph deep in filler so naive prefix
	// truncation would lose it.
	var b strings.Builder
	for range 30 {
		b.WriteString("Unrelated filler paragraph discussing administrative scheduling details.\n\n")
	}
	b.WriteString("Photosynthesis converts sunlight into chemical energy inside chloroplasts.\n\n")
	for range 30 {
		b.WriteString("More filler paragraph text about classroom logistics and calendars.\n\n")
	}

	lesson := &store.Lesson{Title: "Biology", Content: b.String()}
	cfg := testContextConfig()

	payload, err := BuildContext(lesson, "How does photosynthesis convert sunlight?", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.Truncated {
		t.Fatal("expected truncation")
	}
	if !strings.Contains(payload.Text, "Photosynthesis") {
		t.Fatal("expected the overlapping segment to survive truncation")
	}
	if len(payload.Text) > cfg.MaxContextChars {
		t.Fatalf("payload %d chars exceeds cap %d", len(payload.Text), cfg.MaxContextChars)
	}
}

func TestBuildContext_NoOverlapFallsBackToLeadingWindow(t *testing.T) {
	var b strings.Builder
	for i := range 40 {
		if i == 0 {
			b.WriteString("Opening paragraph introducing the lesson.\n\n")
			continue
		}
		b.WriteString("Subsequent paragraph with further material.\n\n")
	}
	lesson := &store.Lesson{Title: "Misc", Content: b.String()}

	payload, err := BuildContext(lesson, "zzzz qqqq xxxx", testContextConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(payload.Text, "Opening paragraph") {
		t.Fatal("expected leading window when nothing overlaps")
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	long := strings.Repeat("Segment text with assorted vocabulary words here. ", 100)
	lesson := &store.Lesson{Title: "Det", Content: long}

	a, err := BuildContext(lesson, "vocabulary words", testContextConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildContext(lesson, "vocabulary words", testContextConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Text != b.Text {
		t.Fatal("BuildContext must be deterministic for identical inputs")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"What is a neural network?", []string{"neural", "network"}},
		{"", nil},
		{"THE AND OF", nil},
		{"photosynthesis, sunlight!", []string{"photosynthesis", "sunlight"}},
	}
	for _, tt := range tests {
		got := tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
