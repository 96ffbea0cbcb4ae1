package validate

import (
	"github.com/agext/levenshtein"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
)

// Validator classifies learner answers against a conjugation result.
// It holds an engine so it can re-conjugate the same verb in nearby
// persons, tenses, and the indicative mood: an answer that is a valid
// form of the wrong slot earns a targeted classification instead of a
// generic "incorrect".
type Validator struct {
	engine *conjugate.Engine
}

// NewValidator creates a Validator over the given engine.
func NewValidator(engine *conjugate.Engine) *Validator {
	return &Validator{engine: engine}
}

// Validate never fails: learner input is never invalid, only wrong.
// Worst case the outcome is unrecognized.
func (v *Validator) Validate(result *conjugate.Result, rawAnswer string) *Outcome {
	answer := Normalize(rawAnswer)

	accepted := result.Accepted()
	normAccepted := make([]string, len(accepted))
	for i, form := range accepted {
		normAccepted[i] = Normalize(form)
	}

	out := &Outcome{Distance: nearestDistance(answer, normAccepted)}

	for i, form := range normAccepted {
		if answer == form {
			out.Classification = Correct
			out.Correct = true
			out.MatchedForm = accepted[i]
			return out
		}
	}

	if answer == "" {
		out.Classification = Unrecognized
		return out
	}

	folded := FoldAccents(answer)
	for i, form := range normAccepted {
		if folded == FoldAccents(form) {
			out.Classification = MinorTypo
			out.MatchedForm = accepted[i]
			return out
		}
	}

	if person, form, ok := v.matchesOtherPerson(result, answer); ok {
		out.Classification = WrongPerson
		out.MatchedForm = form
		out.ActualPerson = person
		return out
	}
	if tense, form, ok := v.matchesOtherTense(result, answer); ok {
		out.Classification = WrongTense
		out.MatchedForm = form
		out.ActualTense = tense
		return out
	}
	if form, ok := v.matchesIndicative(result, answer); ok {
		out.Classification = WrongMood
		out.MatchedForm = form
		out.ActualTense = grammar.TensePresentIndicative
		return out
	}

	out.Classification = Unrecognized
	return out
}

// matchesOtherPerson probes the same verb and tense across the other
// five persons.
func (v *Validator) matchesOtherPerson(result *conjugate.Result, answer string) (grammar.Person, string, bool) {
	for _, person := range grammar.Persons {
		if person == result.Person {
			continue
		}
		if form, ok := v.probe(result.Verb.Infinitive, result.Tense, person, answer); ok {
			return person, form, true
		}
	}
	return 0, "", false
}

// matchesOtherTense probes the same verb and person across the other
// subjunctive tenses.
func (v *Validator) matchesOtherTense(result *conjugate.Result, answer string) (grammar.Tense, string, bool) {
	for _, tense := range grammar.SubjunctiveTenses {
		if tense == result.Tense {
			continue
		}
		if form, ok := v.probe(result.Verb.Infinitive, tense, result.Person, answer); ok {
			return tense, form, true
		}
	}
	return "", "", false
}

// matchesIndicative probes the present indicative in the same person,
// the signature mood confusion.
func (v *Validator) matchesIndicative(result *conjugate.Result, answer string) (string, bool) {
	if result.Tense == grammar.TensePresentIndicative {
		return "", false
	}
	return v.probe(result.Verb.Infinitive, grammar.TensePresentIndicative, result.Person, answer)
}

// probe conjugates one slot and reports whether the answer matches any
// of its accepted forms. Conjugation failures mean the slot has no data
// for this verb and are treated as no match.
func (v *Validator) probe(infinitive string, tense grammar.Tense, person grammar.Person, answer string) (string, bool) {
	res, err := v.engine.Conjugate(conjugate.Request{Infinitive: infinitive, Tense: tense, Person: person})
	if err != nil {
		return "", false
	}
	for _, form := range res.Accepted() {
		if answer == Normalize(form) {
			return form, true
		}
	}
	return "", false
}

func nearestDistance(answer string, forms []string) int {
	best := -1
	for _, form := range forms {
		d := levenshtein.Distance(answer, form, nil)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		best = 0
	}
	return best
}
