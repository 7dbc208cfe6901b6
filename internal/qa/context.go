package qa

import (
	"sort"
	"strings"

	"github.com/abhisek/studyhall/internal/store"
)

// ContextConfig bounds the lesson excerpt sent to the model.
type ContextConfig struct {
	// MaxContextChars is the hard cap on the payload size. The builder
	// never produces a larger payload.
	MaxContextChars int

	// SegmentChars is the target size of one scoring segment.
	SegmentChars int
}

// DefaultContextConfig returns sensible defaults for context building.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		MaxContextChars: 6000,
		SegmentChars:    800,
	}
}

// ContextPayload is the bounded slice of lesson text handed to the
// answer engine.
type ContextPayload struct {
	LessonTitle string
	Text        string
	Truncated   bool
}

// BuildContext selects a bounded window of lesson content relevant to
// the question. Pure function of (lesson, question, config): no side
// effects, deterministic.
//
// Short lessons pass through whole. Long lessons are split into
// paragraph-packed segments and the segments sharing the most keywords
// with the question are kept, in original document order, so grounding
// survives truncation. When nothing overlaps, the leading window wins.
func BuildContext(lesson *store.Lesson, question string, cfg ContextConfig) (ContextPayload, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return ContextPayload{}, &ErrInvalidInput{Field: "question", Reason: "must not be empty"}
	}
	content := strings.TrimSpace(lesson.Content)
	if content == "" {
		return ContextPayload{}, &ErrInvalidInput{Field: "lesson content", Reason: "must not be empty"}
	}

	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = DefaultContextConfig().MaxContextChars
	}
	if cfg.SegmentChars <= 0 || cfg.SegmentChars > cfg.MaxContextChars {
		cfg.SegmentChars = min(DefaultContextConfig().SegmentChars, cfg.MaxContextChars)
	}

	if len(content) <= cfg.MaxContextChars {
		return ContextPayload{LessonTitle: lesson.Title, Text: content, Truncated: false}, nil
	}

	segments := segment(content, cfg.SegmentChars)
	terms := tokenize(q)

	type scored struct {
		index int
		score int
		text  string
	}
	ranked := make([]scored, len(segments))
	for i, seg := range segments {
		ranked[i] = scored{index: i, score: overlapScore(seg, terms), text: seg}
	}

	// Highest overlap first; earlier segments win ties so a zero-overlap
	// question degrades to a leading window.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	var picked []scored
	budget := cfg.MaxContextChars
	for _, s := range ranked {
		need := len(s.text)
		if len(picked) > 0 {
			need += 2 // joining separator
		}
		if need > budget {
			continue
		}
		picked = append(picked, s)
		budget -= need
	}

	// Reassemble in document order.
	sort.Slice(picked, func(i, j int) bool { return picked[i].index < picked[j].index })
	parts := make([]string, len(picked))
	for i, s := range picked {
		parts[i] = s.text
	}
	text := strings.Join(parts, "\n\n")

	// The packing above respects the cap; clamp anyway so the invariant
	// holds even if a single segment overshoots.
	if len(text) > cfg.MaxContextChars {
		text = text[:cfg.MaxContextChars]
	}

	return ContextPayload{LessonTitle: lesson.Title, Text: text, Truncated: true}, nil
}

// segment splits content into chunks of roughly target size, preferring
// paragraph boundaries. Paragraphs longer than the target are split hard.
func segment(content string, target int) []string {
	paragraphs := strings.Split(content, "\n\n")

	var segs []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, cur.String())
			cur.Reset()
		}
	}

	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		for len(p) > target {
			flush()
			segs = append(segs, p[:target])
			p = p[target:]
		}
		if p == "" {
			continue
		}

		if cur.Len() > 0 && cur.Len()+2+len(p) > target {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(p)
	}
	flush()

	return segs
}

// overlapScore counts how many times the question terms appear in the
// segment.
func overlapScore(seg string, terms []string) int {
	if len(terms) == 0 {
		return 0
	}
	freq := make(map[string]int)
	for _, tok := range tokenize(seg) {
		freq[tok]++
	}
	score := 0
	for _, t := range terms {
		score += freq[t]
	}
	return score
}
