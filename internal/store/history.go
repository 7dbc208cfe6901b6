package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyhall/ent"
	"github.com/abhisek/studyhall/ent/qarecord"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, lessonID, userID int, question, answer string, unanswerable bool) (*QARecord, error) {
	rec, err := r.client.QARecord.Create().
		SetLessonID(lessonID).
		SetUserID(userID).
		SetQuestion(question).
		SetAnswer(answer).
		SetUnanswerable(unanswerable).
		Save(ctx)
	if err != nil {
		// Foreign key violations land here too: a record must reference an
		// existing lesson and user.
		return nil, &ErrPersistence{Op: "append qa record", Err: err}
	}
	return entQARecordToQARecord(rec), nil
}

func (r *historyRepo) ByLessonAndUser(ctx context.Context, lessonID, userID int) ([]QARecord, error) {
	recs, err := r.client.QARecord.Query().
		Where(
			qarecord.LessonID(lessonID),
			qarecord.UserID(userID),
		).
		Order(ent.Asc(qarecord.FieldCreatedAt), ent.Asc(qarecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history for lesson %d user %d: %w", lessonID, userID, err)
	}
	return entQARecordsToQARecords(recs), nil
}

func (r *historyRepo) ByUser(ctx context.Context, userID, limit int) ([]QARecord, error) {
	q := r.client.QARecord.Query().
		Where(qarecord.UserID(userID)).
		Order(ent.Desc(qarecord.FieldCreatedAt), ent.Desc(qarecord.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history for user %d: %w", userID, err)
	}
	return entQARecordsToQARecords(recs), nil
}

func entQARecordToQARecord(rec *ent.QARecord) *QARecord {
	return &QARecord{
		ID:           rec.ID,
		LessonID:     rec.LessonID,
		UserID:       rec.UserID,
		Question:     rec.Question,
		Answer:       rec.Answer,
		Unanswerable: rec.Unanswerable,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func entQARecordsToQARecords(recs []*ent.QARecord) []QARecord {
	out := make([]QARecord, len(recs))
	for i, rec := range recs {
		out[i] = *entQARecordToQARecord(rec)
	}
	return out
}
