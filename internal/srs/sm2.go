package srs

import (
	"math"
	"time"

	"github.com/idelarosa/subjunto/internal/validate"
)

// Quality grades per classic SM-2 (0 worst, 5 best).
const (
	QualityPerfect      = 5
	QualityWithHint     = 4
	QualityHesitant     = 3
	QualityWrongButNear = 2
	QualityBlackout     = 0
)

const (
	minEasiness = 1.3
	maxEasiness = 2.5

	firstInterval  = 1
	secondInterval = 6
)

// QualityFor maps a validation outcome to an SM-2 quality grade. A
// minor typo grades 3: not a lapse, but slower than a clean recall.
func QualityFor(outcome *validate.Outcome, hintUsed bool) int {
	switch outcome.Classification {
	case validate.Correct:
		if hintUsed {
			return QualityWithHint
		}
		return QualityPerfect
	case validate.MinorTypo:
		return QualityHesitant
	case validate.WrongPerson, validate.WrongTense, validate.WrongMood:
		return QualityWrongButNear
	default:
		return QualityBlackout
	}
}

// Update applies one review of the given quality at the given time and
// returns the new schedule. The input is never mutated.
//
// Classic SM-2: the easiness factor moves by
// 0.1 - (5-q)*(0.08 + (5-q)*0.02) clamped to [1.3, 2.5]. A quality
// below 3 is a lapse and resets repetitions to 0 and the interval to
// one day regardless of prior streak. Otherwise intervals run
// 1, 6, then round(interval * easiness).
func Update(s Schedule, quality int, now time.Time) Schedule {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	next := s
	q := float64(quality)
	next.EasinessFactor = clamp(s.EasinessFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)), minEasiness, maxEasiness)

	if quality < 3 {
		next.Repetitions = 0
		next.IntervalDays = firstInterval
	} else {
		next.Repetitions = s.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = firstInterval
		case 2:
			next.IntervalDays = secondInterval
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EasinessFactor))
		}
	}

	next.LastReviewed = now
	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// Apply grades the outcome and updates the schedule in one step.
func Apply(s Schedule, outcome *validate.Outcome, hintUsed bool, now time.Time) Schedule {
	return Update(s, QualityFor(outcome, hintUsed), now)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
