package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the session ran over"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("points").
			Default(0).
			Comment("Points awarded (on end only)"),
		field.Int("hearts_remaining").
			Default(0).
			Comment("Hearts left at session end (on end only)"),
		field.Bool("practice").
			Default(false).
			Comment("Whether the pass was a practice replay"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
