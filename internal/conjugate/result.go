package conjugate

import (
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// Request asks for one conjugated form.
type Request struct {
	Infinitive string
	Tense      grammar.Tense
	Person     grammar.Person
}

// Explanation tags describe which rule paths produced a form. They feed
// feedback text downstream; only the engine knows which path was taken.
const (
	TagRegular            = "regular"
	TagIrregularForm      = "irregular-form"
	TagIrregularStem      = "irregular-stem"
	TagIrregularParticple = "irregular-participle"
	TagStemChange         = "stem-change"
	TagWeakVowelReduction = "weak-vowel-reduction"
	TagSpellingRule       = "spelling-rule"
	TagCompound           = "compound"
	TagImperfectVariants  = "imperfect-ra-se"
)

// Result is the engine's answer for a single request. It is output-only:
// callers never mutate it, and it carries the request context so the
// validator can re-conjugate the same verb for its error analysis.
type Result struct {
	Verb   *verbs.Record
	Tense  grammar.Tense
	Person grammar.Person

	// Primary is the form the learner is expected to produce.
	Primary string

	// Alternates are other fully correct answers (e.g. the -se imperfect
	// variant when -ra is primary).
	Alternates []string

	// StemUsed and EndingApplied expose the derivation pieces for
	// feedback. Empty for table-sourced forms.
	StemUsed      string
	EndingApplied string

	Irregular    bool
	StemChanging bool
	SpellingRule grammar.SpellingRule

	// Tags lists the rule paths that fired, in application order.
	Tags []string
}

// Accepted returns every form the validator should treat as correct,
// primary first.
func (r *Result) Accepted() []string {
	out := make([]string, 0, 1+len(r.Alternates))
	out = append(out, r.Primary)
	out = append(out, r.Alternates...)
	return out
}
