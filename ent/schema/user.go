package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a named player identity. Every draft and record is owned by
// exactly one user; deleting a user cascades to both.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, unique across users"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("drafts", ThrowDraft.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("records", ThrowRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
