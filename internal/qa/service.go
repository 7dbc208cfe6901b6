package qa

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/store"
)

// Identity is the verified caller handed down by the external identity
// layer. The service trusts it and makes no authorization decisions.
type Identity struct {
	UserID int
	Role   store.Role
}

// AnswerOutcome is the result of one answer request: the persisted
// record plus the unanswerable marker when the model could not ground
// an answer.
type AnswerOutcome struct {
	Record       *store.QARecord
	Unanswerable bool
	Reason       string
}

// Service orchestrates the question-answering pipeline: validate, build
// context, generate, record.
type Service struct {
	lessons    store.LessonRepo
	history    store.HistoryRepo
	engine     *Engine
	contextCfg ContextConfig
	log        *zap.Logger
}

// NewService creates the Q&A service.
func NewService(lessons store.LessonRepo, history store.HistoryRepo, engine *Engine, contextCfg ContextConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		lessons:    lessons,
		history:    history,
		engine:     engine,
		contextCfg: contextCfg,
		log:        log,
	}
}

// Answer runs the full pipeline for one question.
//
// Validation and lesson lookup happen before any provider call, so input
// errors never cost a network round trip. If the caller's context is
// cancelled while the provider call is outstanding, nothing is recorded:
// an answer nobody will see does not belong in the history.
//
// Partial-failure policy: consistency over availability. When the
// history write fails after a successful generation, the whole request
// fails and the generated answer is discarded, so history never misses
// an answer that a student was shown.
func (s *Service) Answer(ctx context.Context, id Identity, lessonID int, question string) (*AnswerOutcome, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &ErrInvalidInput{Field: "question", Reason: "must not be empty"}
	}
	if lessonID <= 0 {
		return nil, &ErrInvalidInput{Field: "lesson_id", Reason: "must reference a lesson"}
	}

	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	payload, err := BuildContext(lesson, question, s.contextCfg)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Answer(ctx, payload, question)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		s.log.Info("request cancelled after generation, discarding answer",
			zap.Int("lesson_id", lessonID),
			zap.Int("user_id", id.UserID))
		return nil, ctx.Err()
	}

	rec, err := s.history.Append(ctx, lessonID, id.UserID, question, result.Answer, result.Unanswerable)
	if err != nil {
		s.log.Error("history write failed after successful generation",
			zap.Int("lesson_id", lessonID),
			zap.Int("user_id", id.UserID),
			zap.Error(err))
		return nil, err
	}

	return &AnswerOutcome{
		Record:       rec,
		Unanswerable: result.Unanswerable,
		Reason:       result.Reason,
	}, nil
}

// History returns the caller's Q&A records for one lesson in
// chronological order. The lesson must exist.
func (s *Service) History(ctx context.Context, id Identity, lessonID int) ([]store.QARecord, error) {
	if _, err := s.lessons.Get(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.history.ByLessonAndUser(ctx, lessonID, id.UserID)
}
