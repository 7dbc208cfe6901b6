package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/studyhall/internal/recommend"
	"github.com/abhisek/studyhall/internal/store"
)

var validate = validator.New()

type createLessonRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type answerRequest struct {
	LessonID int    `json:"lesson_id" validate:"required,gt=0"`
	Question string `json:"question" validate:"required"`
}

type lessonResponse struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ContentPreview string `json:"content_preview"`
	CreatedAt      string `json:"created_at"`
}

type lessonDetailResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type answerResponse struct {
	RecordID     int    `json:"record_id"`
	LessonID     int    `json:"lesson_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Unanswerable bool   `json:"unanswerable"`
	Reason       string `json:"reason,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type historyEntryResponse struct {
	ID           int    `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Unanswerable bool   `json:"unanswerable"`
	CreatedAt    string `json:"created_at"`
}

type recommendationResponse struct {
	LessonID int     `json:"lesson_id"`
	Score    float64 `json:"score"`
}

func toLessonResponse(l store.Lesson) lessonResponse {
	return lessonResponse{
		ID:             l.ID,
		Title:          l.Title,
		ContentPreview: l.Preview(),
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toLessonDetailResponse(l *store.Lesson) lessonDetailResponse {
	return lessonDetailResponse{
		ID:        l.ID,
		Title:     l.Title,
		Content:   l.Content,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toHistoryResponse(records []store.QARecord) []historyEntryResponse {
	out := make([]historyEntryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, historyEntryResponse{
			ID:           r.ID,
			Question:     r.Question,
			Answer:       r.Answer,
			Unanswerable: r.Unanswerable,
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func toRecommendationResponse(scores []recommend.Score) []recommendationResponse {
	out := make([]recommendationResponse, 0, len(scores))
	for _, sc := range scores {
		out = append(out, recommendationResponse{LessonID: sc.LessonID, Score: sc.Score})
	}
	return out
}
