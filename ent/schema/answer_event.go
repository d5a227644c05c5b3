package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded submission within a lesson session. The
// journal is a local review cache; the platform's record is authoritative.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson whose catalog this challenge belongs to"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Challenge that was answered"),
		field.String("challenge_type").
			NotEmpty().
			Comment("SELECT, ASSIST, FILL_BLANK, ..."),
		field.String("option_id").
			NotEmpty().
			Comment("The canonical option submitted for grading"),
		field.Bool("correct").
			Comment("The platform's verdict"),
		field.Int("hearts_after").
			Comment("Server-reported hearts balance after grading"),
		field.Int("time_ms").
			Comment("Milliseconds from challenge shown to submission"),
		field.Bool("practice").
			Default(false).
			Comment("Whether this pass was a practice replay"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
