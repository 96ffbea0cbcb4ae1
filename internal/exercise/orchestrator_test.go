package exercise

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/validate"
	"github.com/idelarosa/subjunto/internal/verbs"
)

func testOrchestrator(t *testing.T, seed int64) *Orchestrator {
	t.Helper()
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}
	engine := conjugate.NewEngine(lex)
	return NewOrchestrator(engine, nil, rand.New(rand.NewSource(seed)))
}

func TestGenerate_RespectsTierTenses(t *testing.T) {
	o := testOrchestrator(t, 1)

	for i := 0; i < 50; i++ {
		ex, err := o.Generate(1, adaptive.TriggerNone, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Tense != grammar.TensePresentSubjunctive {
			t.Fatalf("tier 1 produced tense %s", ex.Tense)
		}
		if ex.Person == grammar.PersonVosotros {
			t.Fatal("tier 1 produced vosotros")
		}
		if ex.Result == nil || ex.Result.Primary == "" {
			t.Fatal("exercise missing conjugation result")
		}
	}
}

func TestGenerate_Tier5CoversAllTenses(t *testing.T) {
	o := testOrchestrator(t, 2)

	seen := map[grammar.Tense]bool{}
	for i := 0; i < 200; i++ {
		ex, err := o.Generate(5, adaptive.TriggerNone, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		seen[ex.Tense] = true
	}
	for _, tense := range grammar.SubjunctiveTenses {
		if !seen[tense] {
			t.Errorf("tier 5 never produced %s", tense)
		}
	}
}

func TestGenerate_PrefersDueVerbs(t *testing.T) {
	o := testOrchestrator(t, 3)

	due := []string{"hablar", "pedir"}
	for i := 0; i < 30; i++ {
		ex, err := o.Generate(2, adaptive.TriggerNone, due)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Verb.Infinitive != "hablar" && ex.Verb.Infinitive != "pedir" {
			t.Fatalf("picked %s, want a due verb", ex.Verb.Infinitive)
		}
	}
}

func TestGenerate_UnknownDueVerbFallsBack(t *testing.T) {
	o := testOrchestrator(t, 4)

	ex, err := o.Generate(2, adaptive.TriggerNone, []string{"bailar"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if ex.Verb == nil {
		t.Fatal("no verb picked")
	}
}

func TestGenerate_BiasesScenarioCategory(t *testing.T) {
	o := testOrchestrator(t, 5)

	for i := 0; i < 30; i++ {
		ex, err := o.Generate(3, adaptive.TriggerDoubt, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Scenario.Category != adaptive.TriggerDoubt {
			t.Fatalf("scenario category = %s, want doubt", ex.Scenario.Category)
		}
	}
}

func TestExercise_Prompt(t *testing.T) {
	o := testOrchestrator(t, 6)

	ex, err := o.Generate(1, adaptive.TriggerWishes, []string{"hablar"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	prompt := ex.Prompt()
	if prompt == "" {
		t.Fatal("empty prompt")
	}
	// Lead clause, pronoun, blank, and infinitive must all appear.
	for _, part := range []string{ex.Scenario.PresentLead, ex.Person.String(), "___", "(hablar)"} {
		if !strings.Contains(prompt, part) {
			t.Errorf("prompt %q missing %q", prompt, part)
		}
	}
}

func TestSubmit_CorrectAnswerAdvancesSchedule(t *testing.T) {
	o := testOrchestrator(t, 7)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ex, err := o.Generate(2, adaptive.TriggerNone, []string{"hablar"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	schedule := srs.NewSchedule("hablar", now)
	sub := o.Submit(ex, ex.Result.Primary, schedule, false, now)

	if sub.Outcome.Classification != validate.Correct {
		t.Fatalf("classification = %s, want correct", sub.Outcome.Classification)
	}
	if sub.Quality != 5 {
		t.Errorf("quality = %d, want 5", sub.Quality)
	}
	if sub.Schedule.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", sub.Schedule.Repetitions)
	}
}

func TestSubmit_HintLowersQuality(t *testing.T) {
	o := testOrchestrator(t, 8)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ex, err := o.Generate(2, adaptive.TriggerNone, []string{"comer"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	sub := o.Submit(ex, ex.Result.Primary, srs.NewSchedule("comer", now), true, now)
	if sub.Quality != 4 {
		t.Errorf("quality with hint = %d, want 4", sub.Quality)
	}
}

func TestSubmit_WrongAnswerResetsSchedule(t *testing.T) {
	o := testOrchestrator(t, 9)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ex, err := o.Generate(2, adaptive.TriggerNone, []string{"vivir"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	schedule := srs.Schedule{Verb: "vivir", EasinessFactor: 2.5, IntervalDays: 15, Repetitions: 3}
	sub := o.Submit(ex, "zzzz", schedule, false, now)

	if sub.Outcome.Correct {
		t.Fatal("gibberish scored correct")
	}
	if sub.Schedule.Repetitions != 0 || sub.Schedule.IntervalDays != 1 {
		t.Errorf("schedule = reps %d interval %d, want lapse reset 0/1", sub.Schedule.Repetitions, sub.Schedule.IntervalDays)
	}
}

func TestDefaultScenarios_CoverAllCategories(t *testing.T) {
	counts := map[adaptive.TriggerCategory]int{}
	for _, s := range DefaultScenarios() {
		if !s.Category.Valid() {
			t.Errorf("scenario %s has invalid category %q", s.ID, s.Category)
		}
		if s.PresentLead == "" || s.PastLead == "" {
			t.Errorf("scenario %s missing a lead clause", s.ID)
		}
		counts[s.Category]++
	}
	for _, cat := range adaptive.TriggerCategories {
		if counts[cat] < 2 {
			t.Errorf("category %s has %d scenarios, want >= 2", cat, counts[cat])
		}
	}
}
