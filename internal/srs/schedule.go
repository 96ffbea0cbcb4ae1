// Package srs implements an SM-2 family spaced repetition scheduler
// over per-verb review schedules. Updates are pure functions; the
// caller owns persistence and must serialize concurrent writes to the
// same schedule.
package srs

import "time"

// DefaultEasiness is the starting easiness factor for a new schedule.
const DefaultEasiness = 2.5

// Schedule is the durable review state for one verb. Zero interval and
// repetitions mean the verb has never been reviewed.
type Schedule struct {
	Verb           string
	EasinessFactor float64
	IntervalDays   int
	Repetitions    int
	NextReview     time.Time
	LastReviewed   time.Time
}

// NewSchedule creates a fresh schedule for a verb, due immediately.
func NewSchedule(verb string, now time.Time) Schedule {
	return Schedule{
		Verb:           verb,
		EasinessFactor: DefaultEasiness,
		NextReview:     now,
	}
}

// Due reports whether the schedule is due for review at the given time.
func (s Schedule) Due(now time.Time) bool {
	return !s.NextReview.After(now)
}

// OverdueDays returns how many whole days past due the schedule is,
// zero if not yet due.
func (s Schedule) OverdueDays(now time.Time) int {
	if !s.Due(now) {
		return 0
	}
	return int(now.Sub(s.NextReview).Hours() / 24)
}
