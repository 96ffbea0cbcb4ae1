package session

import "time"

// PlanCategory represents the reason a verb was included in the plan.
type PlanCategory string

const (
	// CategoryReview slots drill verbs whose SM-2 schedule is due.
	CategoryReview PlanCategory = "review"
	// CategoryNew slots introduce verbs never scheduled before.
	CategoryNew PlanCategory = "new"
	// CategoryReinforce slots re-drill the verbs missed most recently.
	CategoryReinforce PlanCategory = "reinforce"
)

// PlanSlot is a single slot in the session plan: one verb that will
// receive one exercise.
type PlanSlot struct {
	Verb     string
	Category PlanCategory
}

// Plan is the ordered list of verb slots for a drill session.
type Plan struct {
	Slots    []PlanSlot
	Duration time.Duration
}

// DefaultSessionDuration is the standard session length.
const DefaultSessionDuration = 10 * time.Minute

// DefaultTotalSlots is the default number of exercises in a session.
const DefaultTotalSlots = 10
