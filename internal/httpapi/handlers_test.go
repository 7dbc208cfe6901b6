package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/llm"
	"github.com/abhisek/studyhall/internal/qa"
	"github.com/abhisek/studyhall/internal/recommend"
	"github.com/abhisek/studyhall/internal/store"
)

type testEnv struct {
	server *Server
	store  *store.Store
	mock   *llm.MockProvider
	lesson *store.Lesson
	admin  *store.User
	user   *store.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	lesson, err := s.LessonRepo().Create(ctx, "Deep Learning Overview", "Neural networks are layered models of connected units that learn from examples.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	admin, err := s.UserRepo().Create(ctx, "Admin", store.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	user, err := s.UserRepo().Create(ctx, "Student", store.RoleStudent)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	mock := llm.NewMockProvider()
	provider := llm.WithRetry(mock, llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  1,
	})
	engine := qa.NewEngine(provider, qa.DefaultEngineConfig())
	qaSvc := qa.NewService(s.LessonRepo(), s.HistoryRepo(), engine, qa.DefaultContextConfig(), zap.NewNop())
	recSvc := recommend.NewService(s.HistoryRepo(), recommend.DefaultConfig())

	server := NewServer(DefaultConfig(), s.LessonRepo(), qaSvc, recSvc, zap.NewNop())

	return &testEnv{server: server, store: s, mock: mock, lesson: lesson, admin: admin, user: user}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, user *store.User) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req.Header.Set("X-User-ID", strconv.Itoa(user.ID))
		req.Header.Set("X-User-Role", string(user.Role))
	}

	resp, err := e.server.App().Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func mockAnswer(t *testing.T, answerable bool, answer, reason string) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"answerable": answerable,
		"answer":     answer,
		"reason":     reason,
	})
	if err != nil {
		t.Fatalf("marshal canned answer: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodGet, "/health", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestListLessons(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodGet, "/lessons", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Lessons []lessonResponse `json:"lessons"`
	}
	decodeBody(t, resp, &body)
	if len(body.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(body.Lessons))
	}
	if body.Lessons[0].Title != "Deep Learning Overview" {
		t.Fatalf("unexpected title: %q", body.Lessons[0].Title)
	}
	if body.Lessons[0].ContentPreview == "" {
		t.Fatal("expected a content preview")
	}
}

func TestGetLessonNotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodGet, "/lessons/9999", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateLessonRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{"title": "New Lesson", "content": "Fresh content."}

	resp := env.request(t, http.MethodPost, "/lessons", body, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no identity: expected 401, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodPost, "/lessons", body, env.user)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("student: expected 403, got %d", resp.StatusCode)
	}

	resp = env.request(t, http.MethodPost, "/lessons", body, env.admin)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin: expected 201, got %d", resp.StatusCode)
	}

	var created lessonDetailResponse
	decodeBody(t, resp, &created)
	if created.ID == 0 || created.Title != "New Lesson" {
		t.Fatalf("unexpected created lesson: %+v", created)
	}
}

func TestCreateLessonValidation(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/lessons", map[string]string{"title": "No content"}, env.admin)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAnswerFlow(t *testing.T) {
	env := newTestEnv(t)
	env.mock.AddResponse(mockAnswer(t, true, "A neural network is a layered model of connected units.", ""))

	resp := env.request(t, http.MethodPost, "/ai/answer", map[string]any{
		"lesson_id": env.lesson.ID,
		"question":  "What is a neural network?",
	}, env.user)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var ans answerResponse
	decodeBody(t, resp, &ans)
	if ans.RecordID == 0 || ans.Unanswerable || ans.Answer == "" {
		t.Fatalf("unexpected answer response: %+v", ans)
	}

	resp = env.request(t, http.MethodGet, "/ai/lessons/"+strconv.Itoa(env.lesson.ID)+"/history", nil, env.user)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", resp.StatusCode)
	}

	var hist struct {
		History []historyEntryResponse `json:"history"`
	}
	decodeBody(t, resp, &hist)
	if len(hist.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(hist.History))
	}
	if hist.History[0].ID != ans.RecordID {
		t.Fatal("history entry does not match the answered record")
	}
}

func TestAnswerRequiresIdentity(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/ai/answer", map[string]any{
		"lesson_id": env.lesson.ID,
		"question":  "What is this?",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if env.mock.CallCount() != 0 {
		t.Fatal("unauthenticated request must not reach the provider")
	}
}

func TestAnswerBlankQuestion(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/ai/answer", map[string]any{
		"lesson_id": env.lesson.ID,
		"question":  "   ",
	}, env.user)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.mock.CallCount() != 0 {
		t.Fatal("invalid question must not reach the provider")
	}
}

func TestAnswerUnknownLesson(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/ai/answer", map[string]any{
		"lesson_id": 9999,
		"question":  "What is this?",
	}, env.user)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAnswerEngineDown(t *testing.T) {
	env := newTestEnv(t)
	// Mock queue left empty: every attempt fails.

	resp := env.request(t, http.MethodPost, "/ai/answer", map[string]any{
		"lesson_id": env.lesson.ID,
		"question":  "What is a neural network?",
	}, env.user)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}

	var body struct {
		Error     string `json:"error"`
		Retryable bool   `json:"retryable"`
	}
	decodeBody(t, resp, &body)
	if !body.Retryable {
		t.Fatal("expected the retryable marker on a transient failure")
	}

	resp = env.request(t, http.MethodGet, "/ai/lessons/"+strconv.Itoa(env.lesson.ID)+"/history", nil, env.user)
	var hist struct {
		History []historyEntryResponse `json:"history"`
	}
	decodeBody(t, resp, &hist)
	if len(hist.History) != 0 {
		t.Fatalf("expected no history after a failed request, got %d", len(hist.History))
	}
}

func TestRecommend(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l2, err := env.store.LessonRepo().Create(ctx, "Machine Learning Fundamentals", "ML basics.")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	for range 3 {
		if _, err := env.store.HistoryRepo().Append(ctx, env.lesson.ID, env.user.ID, "q", "a", false); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := env.store.HistoryRepo().Append(ctx, l2.ID, env.user.ID, "q", "a", false); err != nil {
		t.Fatalf("append: %v", err)
	}

	resp := env.request(t, http.MethodPost, "/ai/recommend", nil, env.user)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Recommendations []recommendationResponse `json:"recommendations"`
	}
	decodeBody(t, resp, &body)
	if len(body.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(body.Recommendations))
	}
	if body.Recommendations[0].LessonID != env.lesson.ID {
		t.Fatalf("expected the frequently asked lesson first, got %d", body.Recommendations[0].LessonID)
	}
}

func TestRecommendEmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/ai/recommend", nil, env.user)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Recommendations []recommendationResponse `json:"recommendations"`
	}
	decodeBody(t, resp, &body)
	if len(body.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(body.Recommendations))
	}
}
