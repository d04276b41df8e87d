package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThrowRecord is a finalized throw attempt. Records carry the same payload
// as drafts minus the session id (sessions are a practice-time concept) and
// are created only by the commit transaction.
type ThrowRecord struct {
	ent.Schema
}

func (ThrowRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Float("distance").
			Positive(),
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
		field.Time("timestamp"),
	}
}

func (ThrowRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("records").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (ThrowRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("timestamp"),
	}
}
