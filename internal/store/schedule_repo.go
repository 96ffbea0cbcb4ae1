package store

import (
	"context"
	"fmt"
	"time"

	"github.com/idelarosa/subjunto/ent"
	"github.com/idelarosa/subjunto/ent/reviewschedule"
	"github.com/idelarosa/subjunto/internal/srs"
)

// scheduleRepo implements ScheduleRepo over the review_schedules table.
type scheduleRepo struct {
	client *ent.Client
}

func (r *scheduleRepo) Get(ctx context.Context, verb string) (srs.Schedule, bool, error) {
	row, err := r.client.ReviewSchedule.Query().
		Where(reviewschedule.Verb(verb)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return srs.Schedule{}, false, nil
		}
		return srs.Schedule{}, false, fmt.Errorf("query schedule: %w", err)
	}
	return fromRow(row), true, nil
}

func (r *scheduleRepo) Put(ctx context.Context, s srs.Schedule) error {
	existing, err := r.client.ReviewSchedule.Query().
		Where(reviewschedule.Verb(s.Verb)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query schedule: %w", err)
		}
		_, err = r.client.ReviewSchedule.Create().
			SetVerb(s.Verb).
			SetEasinessFactor(s.EasinessFactor).
			SetIntervalDays(s.IntervalDays).
			SetRepetitions(s.Repetitions).
			SetNextReview(s.NextReview).
			SetLastReviewed(s.LastReviewed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetEasinessFactor(s.EasinessFactor).
		SetIntervalDays(s.IntervalDays).
		SetRepetitions(s.Repetitions).
		SetNextReview(s.NextReview).
		SetLastReviewed(s.LastReviewed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepo) DueBefore(ctx context.Context, t time.Time) ([]srs.Schedule, error) {
	rows, err := r.client.ReviewSchedule.Query().
		Where(reviewschedule.NextReviewLTE(t)).
		Order(ent.Asc(reviewschedule.FieldNextReview)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due schedules: %w", err)
	}
	return fromRows(rows), nil
}

func (r *scheduleRepo) All(ctx context.Context) ([]srs.Schedule, error) {
	rows, err := r.client.ReviewSchedule.Query().
		Order(ent.Asc(reviewschedule.FieldVerb)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	return fromRows(rows), nil
}

func fromRow(row *ent.ReviewSchedule) srs.Schedule {
	return srs.Schedule{
		Verb:           row.Verb,
		EasinessFactor: row.EasinessFactor,
		IntervalDays:   row.IntervalDays,
		Repetitions:    row.Repetitions,
		NextReview:     row.NextReview,
		LastReviewed:   row.LastReviewed,
	}
}

func fromRows(rows []*ent.ReviewSchedule) []srs.Schedule {
	out := make([]srs.Schedule, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
