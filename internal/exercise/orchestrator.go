package exercise

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/validate"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// maxGenerateAttempts bounds the retry loop when a picked combination
// fails to conjugate. Failures are deterministic per combination, so a
// different pick is the only recovery.
const maxGenerateAttempts = 8

// Orchestrator generates drills and scores submissions. It owns no
// durable state; schedules and performance windows are passed in and
// out by the caller.
type Orchestrator struct {
	engine    *conjugate.Engine
	validator *validate.Validator
	scenarios []Scenario
	rng       *rand.Rand
}

// NewOrchestrator creates an Orchestrator. A nil rng gets a
// time-seeded one; pass a fixed-seed rng in tests.
func NewOrchestrator(engine *conjugate.Engine, scenarios []Scenario, rng *rand.Rand) *Orchestrator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}
	return &Orchestrator{
		engine:    engine,
		validator: validate.NewValidator(engine),
		scenarios: scenarios,
		rng:       rng,
	}
}

// Generate picks a verb, tense, person, and scenario for the given
// difficulty tier. Due verbs are preferred over frequency-weighted
// selection; a non-none preferred trigger biases scenario choice to
// that category.
func (o *Orchestrator) Generate(tier int, preferred adaptive.TriggerCategory, dueVerbs []string) (*Exercise, error) {
	tenses := TensesForTier(tier)
	persons := PersonsForTier(tier)

	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		rec := o.pickVerb(dueVerbs)
		if rec == nil {
			return nil, fmt.Errorf("no verbs available")
		}
		tense := tenses[o.rng.Intn(len(tenses))]
		person := persons[o.rng.Intn(len(persons))]

		result, err := o.engine.Conjugate(conjugate.Request{
			Infinitive: rec.Infinitive,
			Tense:      tense,
			Person:     person,
		})
		if err != nil {
			lastErr = err
			continue
		}

		return &Exercise{
			ID:       uuid.New(),
			Scenario: o.pickScenario(preferred),
			Verb:     rec,
			Tense:    tense,
			Person:   person,
			Tier:     tier,
			Result:   result,
		}, nil
	}
	return nil, fmt.Errorf("generate exercise: %w", lastErr)
}

// Submission is the scored result of one attempt, ready for the caller
// to persist and feed back into the selector window.
type Submission struct {
	Outcome  *validate.Outcome
	Schedule srs.Schedule
	Quality  int
}

// Submit validates the answer and advances the verb's review schedule.
// Pure with respect to its inputs; the caller persists the returned
// schedule.
func (o *Orchestrator) Submit(ex *Exercise, rawAnswer string, schedule srs.Schedule, hintUsed bool, now time.Time) Submission {
	outcome := o.validator.Validate(ex.Result, rawAnswer)
	quality := srs.QualityFor(outcome, hintUsed)
	return Submission{
		Outcome:  outcome,
		Schedule: srs.Update(schedule, quality, now),
		Quality:  quality,
	}
}

// pickVerb prefers a random due verb, falling back to a
// frequency-weighted draw over the whole lexicon. Lower frequency rank
// means higher weight.
func (o *Orchestrator) pickVerb(dueVerbs []string) *verbs.Record {
	if len(dueVerbs) > 0 {
		for _, i := range o.rng.Perm(len(dueVerbs)) {
			if rec, ok := o.engine.Lexicon().Lookup(dueVerbs[i]); ok {
				return rec
			}
		}
	}

	all := o.engine.Lexicon().All()
	if len(all) == 0 {
		return nil
	}
	total := 0
	for i := range all {
		total += len(all) - i
	}
	n := o.rng.Intn(total)
	for i, rec := range all {
		n -= len(all) - i
		if n < 0 {
			return rec
		}
	}
	return all[len(all)-1]
}

// pickScenario draws from the preferred category when one is set and
// has scenarios, otherwise from the full set.
func (o *Orchestrator) pickScenario(preferred adaptive.TriggerCategory) Scenario {
	if preferred != adaptive.TriggerNone {
		var biased []Scenario
		for _, s := range o.scenarios {
			if s.Category == preferred {
				biased = append(biased, s)
			}
		}
		if len(biased) > 0 {
			return biased[o.rng.Intn(len(biased))]
		}
	}
	return o.scenarios[o.rng.Intn(len(o.scenarios))]
}

// TensesForTier maps a difficulty tier to its drillable tenses.
// Tiers 1 and 2 stay in the present subjunctive; 3 adds the imperfect
// variants, 4 the present perfect, 5 the pluperfect.
func TensesForTier(tier int) []grammar.Tense {
	switch {
	case tier <= 2:
		return []grammar.Tense{grammar.TensePresentSubjunctive}
	case tier == 3:
		return []grammar.Tense{
			grammar.TensePresentSubjunctive,
			grammar.TenseImperfectSubjunctiveRA,
			grammar.TenseImperfectSubjunctiveSE,
		}
	case tier == 4:
		return []grammar.Tense{
			grammar.TensePresentSubjunctive,
			grammar.TenseImperfectSubjunctiveRA,
			grammar.TenseImperfectSubjunctiveSE,
			grammar.TensePresentPerfectSubjunctive,
		}
	default:
		return grammar.SubjunctiveTenses
	}
}

// PersonsForTier returns the drillable persons. Tier 1 leaves out
// vosotros to soften the ramp-in.
func PersonsForTier(tier int) []grammar.Person {
	if tier <= 1 {
		return []grammar.Person{
			grammar.PersonYo, grammar.PersonTu, grammar.PersonEl,
			grammar.PersonNosotros, grammar.PersonEllos,
		}
	}
	return grammar.Persons
}
