package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Lesson is a unit of educational content published by an administrator.
// Content is immutable from the Q&A pipeline's perspective.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a lesson removes its Q&A history.
		edge.To("questions", QARecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
