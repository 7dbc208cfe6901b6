package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyhall/ent"
	"github.com/abhisek/studyhall/ent/lesson"
)

// lessonRepo implements LessonRepo using the ent client.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Create(ctx context.Context, title, content string) (*Lesson, error) {
	l, err := r.client.Lesson.Create().
		SetTitle(title).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, &ErrPersistence{Op: "create lesson", Err: err}
	}
	return entLessonToLesson(l), nil
}

func (r *lessonRepo) Get(ctx context.Context, id int) (*Lesson, error) {
	l, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{Kind: "lesson", ID: id}
		}
		return nil, fmt.Errorf("get lesson %d: %w", id, err)
	}
	return entLessonToLesson(l), nil
}

func (r *lessonRepo) List(ctx context.Context) ([]Lesson, error) {
	ls, err := r.client.Lesson.Query().
		Order(ent.Asc(lesson.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	out := make([]Lesson, len(ls))
	for i, l := range ls {
		out[i] = *entLessonToLesson(l)
	}
	return out, nil
}

func entLessonToLesson(l *ent.Lesson) *Lesson {
	return &Lesson{
		ID:        l.ID,
		Title:     l.Title,
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
