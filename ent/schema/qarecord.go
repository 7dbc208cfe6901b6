package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QARecord is one (question, answer) pair tied to a lesson and a user.
// History is an append-only log: records are never updated after the
// answer is assigned, and duplicates are allowed.
type QARecord struct {
	ent.Schema
}

func (QARecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lesson_id"),
		field.Int("user_id"),
		field.Text("question").
			NotEmpty(),
		field.Text("answer").
			Optional().
			Default(""),
		field.Bool("unanswerable").
			Default(false).
			Comment("Set when the model could not ground an answer in the lesson"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (QARecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("questions").
			Field("lesson_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("questions").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (QARecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "user_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("created_at"),
	}
}
