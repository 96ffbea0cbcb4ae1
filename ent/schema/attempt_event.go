package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one conjugation attempt: what was asked, what
// the learner typed, and how the validator classified it.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("verb").
			NotEmpty().
			Comment("Infinitive drilled"),
		field.String("tense").
			NotEmpty().
			Comment("Tense requested"),
		field.String("person").
			NotEmpty().
			Comment("Person requested"),
		field.String("trigger_category").
			NotEmpty().
			Comment("WEIRDO category of the scenario"),
		field.Int("tier").
			Comment("Difficulty tier at the time of the attempt"),
		field.String("expected").
			NotEmpty().
			Comment("Primary accepted form"),
		field.String("answer").
			Default("").
			Comment("Raw learner answer"),
		field.String("classification").
			NotEmpty().
			Comment("Validator classification"),
		field.Bool("correct"),
		field.Int("quality").
			Comment("SM-2 quality grade 0-5"),
		field.Int("distance").
			Default(0).
			Comment("Edit distance to nearest accepted form"),
		field.Bool("hint_used").
			Default(false),
		field.String("session_id").
			Optional().
			Comment("UUID of the drill session, if any"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verb"),
		index.Fields("trigger_category"),
		index.Fields("session_id"),
	}
}
