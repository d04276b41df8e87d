package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThrowDraft is a staged, uncommitted throw attempt. Drafts are scoped to a
// (user, session) pair and exist only until they are committed into a
// ThrowRecord or discarded.
type ThrowDraft struct {
	ent.Schema
}

func (ThrowDraft) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("session_id").
			NotEmpty().
			Comment("Opaque id of the practice session tab that staged this draft"),
		field.Float("distance").
			Positive().
			Comment("Target distance in meters"),
		field.Enum("angle").
			Values("LEFT", "CENTER", "RIGHT"),
		field.String("weather").
			Optional().
			Nillable(),
		field.Float("humidity").
			Optional().
			Nillable(),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.String("soil").
			Optional().
			Nillable(),
		field.Float("molkky_weight").
			Optional().
			Nillable(),
		field.Bool("is_success"),
		field.Time("timestamp").
			Comment("Event time of the throw, not insertion time"),
	}
}

func (ThrowDraft) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("drafts").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (ThrowDraft) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_id"),
		index.Fields("timestamp"),
	}
}
