package store

import (
	"context"
	"fmt"

	"github.com/idelarosa/subjunto/ent"
	"github.com/idelarosa/subjunto/ent/sessionevent"
	entschema "github.com/idelarosa/subjunto/ent/schema"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var planSummary []entschema.PlanSlotSummary
	for _, s := range data.PlanSummary {
		planSummary = append(planSummary, entschema.PlanSlotSummary{
			Verb:     s.Verb,
			Category: s.Category,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetExercisesServed(data.ExercisesServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetFinalTier(data.FinalTier).
		SetDurationSecs(data.DurationSecs)

	if len(planSummary) > 0 {
		builder = builder.SetPlanSummary(planSummary)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestTier(ctx context.Context) (int, error) {
	se, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query latest session: %w", err)
	}
	return se.FinalTier, nil
}
