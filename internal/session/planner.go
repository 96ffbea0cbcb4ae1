package session

import (
	"context"
	"sort"
	"time"

	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// Planner builds a session plan from the learner's current state.
type Planner interface {
	// BuildPlan creates a session plan for a session starting at now.
	BuildPlan(now time.Time) (*Plan, error)
}

// DefaultPlanner implements the 60/30/10 planning strategy: due
// reviews first, then unseen verbs by frequency, then one slot
// reinforcing the most-missed verb.
type DefaultPlanner struct {
	Schedules store.ScheduleRepo
	Events    store.EventRepo
	Lexicon   *verbs.Lexicon
	Ctx       context.Context
}

// NewPlanner creates a new DefaultPlanner.
func NewPlanner(ctx context.Context, schedules store.ScheduleRepo, events store.EventRepo, lexicon *verbs.Lexicon) *DefaultPlanner {
	return &DefaultPlanner{
		Schedules: schedules,
		Events:    events,
		Lexicon:   lexicon,
		Ctx:       ctx,
	}
}

// BuildPlan creates a session plan with the 60/30/10 mix. Unfilled
// slots redistribute to the other categories so a session always has
// DefaultTotalSlots exercises as long as the lexicon is non-empty.
func (p *DefaultPlanner) BuildPlan(now time.Time) (*Plan, error) {
	totalSlots := DefaultTotalSlots
	reviewCount := 6
	newCount := 3
	reinforceCount := 1

	reviewVerbs, err := p.dueVerbs(reviewCount, now)
	if err != nil {
		return nil, err
	}
	// Unfilled review slots go to new verbs.
	newCount += reviewCount - len(reviewVerbs)

	newVerbs, err := p.unseenVerbs(newCount)
	if err != nil {
		return nil, err
	}

	reinforceVerbs, err := p.missedVerbs(reinforceCount)
	if err != nil {
		return nil, err
	}

	var slots []PlanSlot
	for _, v := range reviewVerbs {
		slots = append(slots, PlanSlot{Verb: v, Category: CategoryReview})
	}
	for _, v := range newVerbs {
		slots = append(slots, PlanSlot{Verb: v, Category: CategoryNew})
	}
	for _, v := range reinforceVerbs {
		slots = append(slots, PlanSlot{Verb: v, Category: CategoryReinforce})
	}

	// Pad remaining slots by cycling the frequency-ordered lexicon.
	all := p.Lexicon.All()
	for i := 0; len(slots) < totalSlots && len(all) > 0; i++ {
		slots = append(slots, PlanSlot{
			Verb:     all[i%len(all)].Infinitive,
			Category: CategoryNew,
		})
	}

	if len(slots) == 0 {
		return &Plan{Duration: DefaultSessionDuration}, nil
	}
	return &Plan{Slots: slots, Duration: DefaultSessionDuration}, nil
}

// dueVerbs returns up to count due verbs, most overdue first.
func (p *DefaultPlanner) dueVerbs(count int, now time.Time) ([]string, error) {
	due, err := p.Schedules.DueBefore(p.Ctx, now)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range due {
		if _, ok := p.Lexicon.Lookup(s.Verb); !ok {
			continue
		}
		out = append(out, s.Verb)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

// unseenVerbs returns up to count verbs with no schedule yet, in
// frequency order.
func (p *DefaultPlanner) unseenVerbs(count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	scheduled, err := p.Schedules.All(p.Ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(scheduled))
	for _, s := range scheduled {
		seen[s.Verb] = true
	}

	var out []string
	for _, rec := range p.Lexicon.All() {
		if seen[rec.Infinitive] {
			continue
		}
		out = append(out, rec.Infinitive)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

// missedVerbs returns up to count verbs with the lowest recent
// accuracy, requiring at least two attempts each.
func (p *DefaultPlanner) missedVerbs(count int) ([]string, error) {
	recent, err := p.Events.RecentAttempts(p.Ctx, 50)
	if err != nil {
		return nil, err
	}

	type tally struct {
		verb    string
		seen    int
		correct int
	}
	byVerb := make(map[string]*tally)
	for _, a := range recent {
		t := byVerb[a.Verb]
		if t == nil {
			t = &tally{verb: a.Verb}
			byVerb[a.Verb] = t
		}
		t.seen++
		if a.Correct {
			t.correct++
		}
	}

	var candidates []*tally
	for _, t := range byVerb {
		if t.seen < 2 {
			continue
		}
		if _, ok := p.Lexicon.Lookup(t.verb); !ok {
			continue
		}
		candidates = append(candidates, t)
	}
	sort.Slice(candidates, func(i, j int) bool {
		accI := float64(candidates[i].correct) / float64(candidates[i].seen)
		accJ := float64(candidates[j].correct) / float64(candidates[j].seen)
		if accI != accJ {
			return accI < accJ
		}
		return candidates[i].verb < candidates[j].verb
	})

	var out []string
	for i := 0; i < count && i < len(candidates); i++ {
		out = append(out, candidates[i].verb)
	}
	return out, nil
}
