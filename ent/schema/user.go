package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a platform account. Only the identifier and role matter to the
// Q&A pipeline; authentication happens outside this system.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Enum("role").
			Values("admin", "student").
			Default("student"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", QARecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
