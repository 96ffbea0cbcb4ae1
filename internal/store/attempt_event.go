package store

import (
	"context"
	"fmt"

	"github.com/idelarosa/subjunto/ent"
	"github.com/idelarosa/subjunto/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetVerb(data.Verb).
		SetTense(data.Tense).
		SetPerson(data.Person).
		SetTriggerCategory(data.TriggerCategory).
		SetTier(data.Tier).
		SetExpected(data.Expected).
		SetAnswer(data.Answer).
		SetClassification(data.Classification).
		SetCorrect(data.Correct).
		SetQuality(data.Quality).
		SetDistance(data.Distance).
		SetHintUsed(data.HintUsed)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, n int) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	// Reverse to oldest-first so callers can replay into a window.
	out := make([]AttemptRecord, len(events))
	for i, e := range events {
		out[len(events)-1-i] = AttemptRecord{
			Verb:            e.Verb,
			TriggerCategory: e.TriggerCategory,
			Classification:  e.Classification,
			Correct:         e.Correct,
			Timestamp:       e.Timestamp,
		}
	}
	return out, nil
}

func (r *eventRepo) VerbAccuracy(ctx context.Context, verb string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Verb(verb)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query verb attempts: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}

func (r *eventRepo) CategoryAccuracy(ctx context.Context) ([]CategoryStats, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	byCategory := make(map[string]*CategoryStats)
	var order []string
	for _, e := range events {
		stats := byCategory[e.TriggerCategory]
		if stats == nil {
			stats = &CategoryStats{Category: e.TriggerCategory}
			byCategory[e.TriggerCategory] = stats
			order = append(order, e.TriggerCategory)
		}
		stats.Total++
		if e.Correct {
			stats.Correct++
		}
	}

	out := make([]CategoryStats, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCategory[cat])
	}
	return out, nil
}
