package session

import (
	"context"
	"testing"
	"time"

	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/verbs"
)

type fakeScheduleRepo struct {
	due []srs.Schedule
	all []srs.Schedule
}

func (f *fakeScheduleRepo) Get(ctx context.Context, verb string) (srs.Schedule, bool, error) {
	for _, s := range f.all {
		if s.Verb == verb {
			return s, true, nil
		}
	}
	return srs.Schedule{}, false, nil
}

func (f *fakeScheduleRepo) Put(ctx context.Context, schedule srs.Schedule) error { return nil }

func (f *fakeScheduleRepo) DueBefore(ctx context.Context, t time.Time) ([]srs.Schedule, error) {
	return f.due, nil
}

func (f *fakeScheduleRepo) All(ctx context.Context) ([]srs.Schedule, error) {
	return f.all, nil
}

type fakeEventRepo struct {
	attempts []store.AttemptRecord
}

func (f *fakeEventRepo) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(ctx context.Context, data store.SessionEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) RecentAttempts(ctx context.Context, n int) ([]store.AttemptRecord, error) {
	if n > len(f.attempts) {
		n = len(f.attempts)
	}
	return f.attempts[len(f.attempts)-n:], nil
}

func (f *fakeEventRepo) VerbAccuracy(ctx context.Context, verb string) (float64, int, error) {
	return 0, 0, nil
}

func (f *fakeEventRepo) CategoryAccuracy(ctx context.Context) ([]store.CategoryStats, error) {
	return nil, nil
}

func (f *fakeEventRepo) LatestTier(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeEventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(ctx context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(ctx context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func testLexicon(t *testing.T) *verbs.Lexicon {
	t.Helper()
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}
	return lex
}

func TestBuildPlan_FreshLearnerGetsNewVerbsByFrequency(t *testing.T) {
	planner := NewPlanner(context.Background(), &fakeScheduleRepo{}, &fakeEventRepo{}, testLexicon(t))

	plan, err := planner.BuildPlan(time.Now())
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if len(plan.Slots) != DefaultTotalSlots {
		t.Fatalf("slots = %d, want %d", len(plan.Slots), DefaultTotalSlots)
	}
	for i, slot := range plan.Slots {
		if slot.Category != CategoryNew {
			t.Errorf("slot %d category = %q, want new", i, slot.Category)
		}
	}
	// The most frequent verb opens the plan.
	if plan.Slots[0].Verb != "ser" {
		t.Errorf("first slot = %q, want ser", plan.Slots[0].Verb)
	}
	if plan.Duration != DefaultSessionDuration {
		t.Errorf("duration = %v, want %v", plan.Duration, DefaultSessionDuration)
	}
}

func TestBuildPlan_DueVerbsFillReviewSlots(t *testing.T) {
	now := time.Now()
	schedules := &fakeScheduleRepo{
		due: []srs.Schedule{
			{Verb: "hablar", NextReview: now.AddDate(0, 0, -3)},
			{Verb: "pedir", NextReview: now.AddDate(0, 0, -1)},
		},
		all: []srs.Schedule{
			{Verb: "hablar"},
			{Verb: "pedir"},
		},
	}
	planner := NewPlanner(context.Background(), schedules, &fakeEventRepo{}, testLexicon(t))

	plan, err := planner.BuildPlan(now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if len(plan.Slots) != DefaultTotalSlots {
		t.Fatalf("slots = %d, want %d", len(plan.Slots), DefaultTotalSlots)
	}
	if plan.Slots[0].Verb != "hablar" || plan.Slots[0].Category != CategoryReview {
		t.Errorf("slot 0 = %+v, want hablar review", plan.Slots[0])
	}
	if plan.Slots[1].Verb != "pedir" || plan.Slots[1].Category != CategoryReview {
		t.Errorf("slot 1 = %+v, want pedir review", plan.Slots[1])
	}
	// Scheduled verbs never reappear as new.
	for _, slot := range plan.Slots[2:] {
		if slot.Verb == "hablar" || slot.Verb == "pedir" {
			t.Errorf("scheduled verb %q reappeared as %q", slot.Verb, slot.Category)
		}
	}
}

func TestBuildPlan_MostMissedVerbGetsReinforceSlot(t *testing.T) {
	events := &fakeEventRepo{
		attempts: []store.AttemptRecord{
			{Verb: "dormir", Correct: false},
			{Verb: "dormir", Correct: false},
			{Verb: "querer", Correct: true},
			{Verb: "querer", Correct: true},
			{Verb: "ver", Correct: false}, // single miss, below threshold
		},
	}
	planner := NewPlanner(context.Background(), &fakeScheduleRepo{}, events, testLexicon(t))

	plan, err := planner.BuildPlan(time.Now())
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	var reinforce []string
	for _, slot := range plan.Slots {
		if slot.Category == CategoryReinforce {
			reinforce = append(reinforce, slot.Verb)
		}
	}
	if len(reinforce) != 1 || reinforce[0] != "dormir" {
		t.Errorf("reinforce slots = %v, want [dormir]", reinforce)
	}
}

func TestBuildPlan_DueVerbNotInLexiconIsSkipped(t *testing.T) {
	now := time.Now()
	schedules := &fakeScheduleRepo{
		due: []srs.Schedule{{Verb: "florbar", NextReview: now.AddDate(0, 0, -1)}},
		all: []srs.Schedule{{Verb: "florbar"}},
	}
	planner := NewPlanner(context.Background(), schedules, &fakeEventRepo{}, testLexicon(t))

	plan, err := planner.BuildPlan(now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	for _, slot := range plan.Slots {
		if slot.Verb == "florbar" {
			t.Fatal("unknown verb made it into the plan")
		}
		if slot.Category == CategoryReview {
			t.Errorf("unexpected review slot for %q", slot.Verb)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	plan := &Plan{Slots: []PlanSlot{
		{Verb: "hablar", Category: CategoryReview},
		{Verb: "comer", Category: CategoryNew},
		{Verb: "hablar", Category: CategoryReview},
	}}
	state := NewState(plan, "s-1", 2)
	state.RecordAnswer("hablar", true)
	state.RecordAnswer("hablar", false)
	state.RecordAnswer("comer", true)
	state.Elapsed = 4 * time.Minute
	state.Tier = 3

	sum := BuildSummary(state)
	if sum.TotalExercises != 3 || sum.TotalCorrect != 2 {
		t.Errorf("totals = %d/%d, want 2/3", sum.TotalCorrect, sum.TotalExercises)
	}
	if sum.Accuracy < 0.66 || sum.Accuracy > 0.67 {
		t.Errorf("accuracy = %v", sum.Accuracy)
	}
	if sum.FinalTier != 3 {
		t.Errorf("final tier = %d, want 3", sum.FinalTier)
	}
	if len(sum.VerbResults) != 2 {
		t.Fatalf("verb results = %d, want 2 (hablar deduplicated)", len(sum.VerbResults))
	}
	if sum.VerbResults[0].Verb != "hablar" || sum.VerbResults[0].Attempted != 2 || sum.VerbResults[0].Correct != 1 {
		t.Errorf("hablar result = %+v", sum.VerbResults[0])
	}
}

func TestStateAdvanceAndDone(t *testing.T) {
	plan := &Plan{Slots: []PlanSlot{
		{Verb: "hablar", Category: CategoryNew},
		{Verb: "comer", Category: CategoryNew},
	}}
	state := NewState(plan, "s-2", 1)

	if state.Done() {
		t.Fatal("fresh state should not be done")
	}
	if slot := state.CurrentSlot(); slot == nil || slot.Verb != "hablar" {
		t.Fatalf("current slot = %+v", slot)
	}

	state.HintShown = true
	state.Advance()
	if state.HintShown {
		t.Error("Advance should clear HintShown")
	}
	if slot := state.CurrentSlot(); slot == nil || slot.Verb != "comer" {
		t.Fatalf("current slot after advance = %+v", slot)
	}

	state.Advance()
	if !state.Done() {
		t.Error("state should be done after last slot")
	}
	if state.CurrentSlot() != nil {
		t.Error("CurrentSlot should be nil when done")
	}
}
