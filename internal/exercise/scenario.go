package exercise

import (
	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/grammar"
)

// Scenario is a curated trigger sentence with a blank for the
// conjugated verb. Content is data, not generated. Each scenario
// carries two lead clauses: the present lead frames the present and
// present perfect subjunctive, the past lead frames the imperfect and
// pluperfect.
type Scenario struct {
	ID          string
	Category    adaptive.TriggerCategory
	PresentLead string
	PastLead    string
	English     string
}

// Lead returns the clause that frames the blank for the given tense.
func (s Scenario) Lead(tense grammar.Tense) string {
	switch tense {
	case grammar.TenseImperfectSubjunctiveRA, grammar.TenseImperfectSubjunctiveSE, grammar.TensePluperfectSubjunctive:
		return s.PastLead
	}
	return s.PresentLead
}

// DefaultScenarios is the curated WEIRDO scenario seed, three per
// category.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{ID: "wish-espero", Category: adaptive.TriggerWishes,
			PresentLead: "Espero que", PastLead: "Esperaba que",
			English: "I hope that..."},
		{ID: "wish-quiero", Category: adaptive.TriggerWishes,
			PresentLead: "Quiero que", PastLead: "Quería que",
			English: "I want..."},
		{ID: "wish-deseamos", Category: adaptive.TriggerWishes,
			PresentLead: "Deseamos que", PastLead: "Deseábamos que",
			English: "We wish that..."},

		{ID: "emo-alegra", Category: adaptive.TriggerEmotions,
			PresentLead: "Me alegra que", PastLead: "Me alegraba que",
			English: "It makes me happy that..."},
		{ID: "emo-temo", Category: adaptive.TriggerEmotions,
			PresentLead: "Temo que", PastLead: "Temía que",
			English: "I fear that..."},
		{ID: "emo-sorprende", Category: adaptive.TriggerEmotions,
			PresentLead: "Nos sorprende que", PastLead: "Nos sorprendió que",
			English: "It surprises us that..."},

		{ID: "imp-importante", Category: adaptive.TriggerImpersonal,
			PresentLead: "Es importante que", PastLead: "Era importante que",
			English: "It is important that..."},
		{ID: "imp-necesario", Category: adaptive.TriggerImpersonal,
			PresentLead: "Es necesario que", PastLead: "Era necesario que",
			English: "It is necessary that..."},
		{ID: "imp-posible", Category: adaptive.TriggerImpersonal,
			PresentLead: "Es posible que", PastLead: "Era posible que",
			English: "It is possible that..."},

		{ID: "rec-recomiendo", Category: adaptive.TriggerRecommendations,
			PresentLead: "Recomiendo que", PastLead: "Recomendé que",
			English: "I recommend that..."},
		{ID: "rec-sugiere", Category: adaptive.TriggerRecommendations,
			PresentLead: "El profesor sugiere que", PastLead: "El profesor sugirió que",
			English: "The teacher suggests that..."},
		{ID: "rec-aconsejan", Category: adaptive.TriggerRecommendations,
			PresentLead: "Mis padres aconsejan que", PastLead: "Mis padres aconsejaron que",
			English: "My parents advise that..."},

		{ID: "doubt-dudo", Category: adaptive.TriggerDoubt,
			PresentLead: "Dudo que", PastLead: "Dudaba que",
			English: "I doubt that..."},
		{ID: "doubt-nocreo", Category: adaptive.TriggerDoubt,
			PresentLead: "No creo que", PastLead: "No creía que",
			English: "I don't believe that..."},
		{ID: "doubt-nocierto", Category: adaptive.TriggerDoubt,
			PresentLead: "No es cierto que", PastLead: "No era cierto que",
			English: "It is not true that..."},

		{ID: "ojala-now", Category: adaptive.TriggerOjala,
			PresentLead: "Ojalá que", PastLead: "Ojalá que",
			English: "Hopefully... / If only..."},
		{ID: "ojala-tal-vez", Category: adaptive.TriggerOjala,
			PresentLead: "Tal vez", PastLead: "Tal vez",
			English: "Perhaps..."},
		{ID: "ojala-quizas", Category: adaptive.TriggerOjala,
			PresentLead: "Quizás", PastLead: "Quizás",
			English: "Maybe..."},
	}
}
