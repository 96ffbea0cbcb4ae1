package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSchedule is the durable SM-2 state for one verb. One row per
// verb; subjunto is a single-user app so there is no user key.
type ReviewSchedule struct {
	ent.Schema
}

func (ReviewSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("verb").
			NotEmpty().
			Unique().
			Comment("Infinitive this schedule tracks"),
		field.Float("easiness_factor").
			Default(2.5).
			Comment("SM-2 easiness, clamped to [1.3, 2.5]"),
		field.Int("interval_days").
			Default(0),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive non-lapse reviews"),
		field.Time("next_review"),
		field.Time("last_reviewed").
			Optional(),
	}
}

func (ReviewSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
	}
}
