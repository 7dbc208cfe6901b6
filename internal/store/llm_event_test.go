package store

import (
	"context"
	"testing"
	"time"
)

func appendEvent(t *testing.T, s *Store, purpose, model string, in, out int, success bool) {
	t.Helper()
	err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    10,
		Success:      success,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	appendEvent(t, s, "qa-answer", "mock", 100, 50, true)
	appendEvent(t, s, "qa-answer", "mock", 200, 80, false)

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].ID <= events[1].ID {
		t.Fatal("expected events ordered newest first")
	}

	got, err := s.EventRepo().GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := s.EventRepo().GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a missing event")
	}
}

func TestEventQueryLimitAndWindow(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for range 5 {
		appendEvent(t, s, "qa-answer", "mock", 10, 5, true)
	}

	limited, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 events, got %d", len(limited))
	}

	none, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{To: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no events before the window, got %d", len(none))
	}
}

func TestEventUsageAggregation(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	appendEvent(t, s, "qa-answer", "model-a", 100, 50, true)
	appendEvent(t, s, "qa-answer", "model-a", 200, 100, true)
	appendEvent(t, s, "other", "model-b", 10, 5, true)

	byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "qa-answer" {
			if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 150 {
				t.Fatalf("unexpected qa-answer usage: %+v", u)
			}
		}
	}

	byModel, err := s.EventRepo().LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].Calls != 2 {
		t.Fatalf("unexpected model usage: %+v", byModel[0])
	}
}
