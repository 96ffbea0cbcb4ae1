package store

import (
	"context"
	"testing"
	"time"

	"github.com/idelarosa/subjunto/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptEventsAndQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{Verb: "hablar", Tense: "present_subjunctive", Person: "yo", TriggerCategory: "wishes", Tier: 1, Expected: "hable", Answer: "hable", Classification: "correct", Correct: true, Quality: 5},
		{Verb: "hablar", Tense: "present_subjunctive", Person: "tú", TriggerCategory: "doubt", Tier: 1, Expected: "hables", Answer: "hablas", Classification: "wrong_mood", Correct: false, Quality: 2, Distance: 1},
		{Verb: "ser", Tense: "present_subjunctive", Person: "yo", TriggerCategory: "doubt", Tier: 2, Expected: "sea", Answer: "sea", Classification: "correct", Correct: true, Quality: 5, SessionID: "s-1"},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	recent, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent count = %d, want 3", len(recent))
	}
	if recent[0].Verb != "hablar" || recent[2].Verb != "ser" {
		t.Errorf("recent not oldest-first: %v", recent)
	}

	acc, count, err := repo.VerbAccuracy(ctx, "hablar")
	if err != nil {
		t.Fatalf("verb accuracy: %v", err)
	}
	if count != 2 || acc != 0.5 {
		t.Errorf("hablar accuracy = %v over %d, want 0.5 over 2", acc, count)
	}

	cats, err := repo.CategoryAccuracy(ctx)
	if err != nil {
		t.Fatalf("category accuracy: %v", err)
	}
	byCat := map[string]CategoryStats{}
	for _, c := range cats {
		byCat[c.Category] = c
	}
	if byCat["doubt"].Total != 2 || byCat["doubt"].Correct != 1 {
		t.Errorf("doubt stats = %+v", byCat["doubt"])
	}
	if byCat["wishes"].Total != 1 || byCat["wishes"].Correct != 1 {
		t.Errorf("wishes stats = %+v", byCat["wishes"])
	}
}

func TestSessionEventsAndLatestTier(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	tier, err := repo.LatestTier(ctx)
	if err != nil {
		t.Fatalf("latest tier (empty): %v", err)
	}
	if tier != 0 {
		t.Errorf("latest tier = %d, want 0 with no sessions", tier)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s-1",
		Action:    "start",
		PlanSummary: []PlanSlotSummaryData{
			{Verb: "hablar", Category: "review"},
			{Verb: "pedir", Category: "new"},
		},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "s-1",
		Action:          "end",
		ExercisesServed: 10,
		CorrectAnswers:  8,
		FinalTier:       3,
		DurationSecs:    300,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	tier, err = repo.LatestTier(ctx)
	if err != nil {
		t.Fatalf("latest tier: %v", err)
	}
	if tier != 3 {
		t.Errorf("latest tier = %d, want 3", tier)
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet", Purpose: "explanation", InputTokens: 120, OutputTokens: 80, LatencyMs: 450, Success: true, RequestBody: "req-1", ResponseBody: "resp-1"},
		{Provider: "anthropic", Model: "claude-sonnet", Purpose: "explanation", InputTokens: 100, OutputTokens: 60, LatencyMs: 350, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "coach", InputTokens: 50, OutputTokens: 30, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for i, r := range requests {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "coach" || events[1].Purpose != "explanation" {
		t.Errorf("order = %s, %s, want coach then explanation", events[0].Purpose, events[1].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if got == nil || got.Model != "claude-sonnet" {
		t.Errorf("got %+v, want claude-sonnet event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Errorf("got %+v for missing ID, want nil", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]LLMPurposeUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	if u := usage["explanation"]; u.Calls != 2 || u.InputTokens != 220 || u.OutputTokens != 140 {
		t.Errorf("explanation usage = %+v", u)
	}
	if u := usage["coach"]; u.Calls != 1 || u.InputTokens != 50 {
		t.Errorf("coach usage = %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := map[string]LLMModelUsage{}
	for _, u := range byModel {
		models[u.Model] = u
	}
	if u := models["claude-sonnet"]; u.Calls != 2 || u.OutputTokens != 140 {
		t.Errorf("claude-sonnet usage = %+v", u)
	}
}

func TestScheduleRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleRepo()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, found, err := repo.Get(ctx, "hablar")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if found {
		t.Fatal("found schedule in empty store")
	}

	sched := srs.NewSchedule("hablar", now)
	sched = srs.Update(sched, 5, now)
	if err := repo.Put(ctx, sched); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, found, err := repo.Get(ctx, "hablar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("schedule not found after put")
	}
	if got.Repetitions != 1 || got.IntervalDays != 1 {
		t.Errorf("got %+v, want reps 1 interval 1", got)
	}

	// Update the same verb.
	sched = srs.Update(got, 5, now.AddDate(0, 0, 1))
	if err := repo.Put(ctx, sched); err != nil {
		t.Fatalf("put update: %v", err)
	}
	got, _, err = repo.Get(ctx, "hablar")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Repetitions != 2 || got.IntervalDays != 6 {
		t.Errorf("after update got %+v, want reps 2 interval 6", got)
	}

	if err := repo.Put(ctx, srs.NewSchedule("pedir", now)); err != nil {
		t.Fatalf("put pedir: %v", err)
	}

	due, err := repo.DueBefore(ctx, now)
	if err != nil {
		t.Fatalf("due before: %v", err)
	}
	if len(due) != 1 || due[0].Verb != "pedir" {
		t.Errorf("due = %v, want just pedir", due)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all[0].Verb != "hablar" {
		t.Errorf("all = %v, want hablar then pedir", all)
	}
}
