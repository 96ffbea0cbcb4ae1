package verbs

import "github.com/idelarosa/subjunto/internal/grammar"

// FormKey addresses one cell of a verb's explicit conjugation table.
type FormKey struct {
	Tense  grammar.Tense
	Person grammar.Person
}

// Record is the immutable reference entry for a single verb. Regular verbs
// carry only class and frequency; irregular verbs add explicit forms and
// stem overrides that take precedence over rule derivation.
type Record struct {
	// Infinitive is the dictionary form and unique key, lowercase.
	Infinitive string

	// Translation is the English gloss shown in prompts and listings.
	Translation string

	// Class is the conjugation class (-ar, -er, -ir).
	Class grammar.VerbClass

	// Irregular marks verbs with explicit table forms or stem overrides.
	Irregular bool

	// StemChange is the boot-pattern change, if any.
	StemChange grammar.StemChange

	// Forms maps {tense, person} to an explicit form. May be partial:
	// a verb like hacer lists only the forms rule derivation gets wrong.
	Forms map[FormKey]string

	// ImperfectStem overrides the derived imperfect subjunctive stem
	// (the third-person-plural preterite minus -ron, e.g. "tuvie" for
	// tener). Empty means derive from the infinitive stem.
	ImperfectStem string

	// Participle overrides the derived past participle (e.g. "hecho"
	// for hacer). Empty means derive.
	Participle string

	// Frequency is the frequency rank, 1 = most frequent. Lower ranks
	// are selected more often by the orchestrator.
	Frequency int
}

// Form returns the explicit table form for a tense/person, if present.
func (r *Record) Form(tense grammar.Tense, person grammar.Person) (string, bool) {
	if r.Forms == nil {
		return "", false
	}
	f, ok := r.Forms[FormKey{Tense: tense, Person: person}]
	return f, ok
}
