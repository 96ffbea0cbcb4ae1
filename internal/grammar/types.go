package grammar

// VerbClass is the conjugation class of a Spanish verb, determined by
// its infinitive ending.
type VerbClass string

const (
	ClassAR VerbClass = "ar"
	ClassER VerbClass = "er"
	ClassIR VerbClass = "ir"
)

// Valid reports whether the verb class is one of the three known classes.
func (c VerbClass) Valid() bool {
	switch c {
	case ClassAR, ClassER, ClassIR:
		return true
	}
	return false
}

// Person is a grammatical person/number slot.
type Person int

const (
	PersonYo Person = iota
	PersonTu
	PersonEl
	PersonNosotros
	PersonVosotros
	PersonEllos
)

// Persons lists all six person slots in paradigm order.
var Persons = []Person{
	PersonYo, PersonTu, PersonEl, PersonNosotros, PersonVosotros, PersonEllos,
}

// Valid reports whether the person is one of the six paradigm slots.
func (p Person) Valid() bool {
	return p >= PersonYo && p <= PersonEllos
}

func (p Person) String() string {
	switch p {
	case PersonYo:
		return "yo"
	case PersonTu:
		return "tú"
	case PersonEl:
		return "él/ella/usted"
	case PersonNosotros:
		return "nosotros"
	case PersonVosotros:
		return "vosotros"
	case PersonEllos:
		return "ellos/ellas/ustedes"
	}
	return "unknown"
}

// Tense identifies a conjugation tense/mood.
//
// The five subjunctive tenses are the drillable set. Present indicative is
// modeled so the validator can detect mood confusion; it is never offered
// as an exercise tense.
type Tense string

const (
	TensePresentSubjunctive        Tense = "present_subjunctive"
	TenseImperfectSubjunctiveRA    Tense = "imperfect_subjunctive_ra"
	TenseImperfectSubjunctiveSE    Tense = "imperfect_subjunctive_se"
	TensePresentPerfectSubjunctive Tense = "present_perfect_subjunctive"
	TensePluperfectSubjunctive     Tense = "pluperfect_subjunctive"
	TensePresentIndicative         Tense = "present_indicative"
)

// SubjunctiveTenses lists the drillable subjunctive tenses in pedagogical order.
var SubjunctiveTenses = []Tense{
	TensePresentSubjunctive,
	TenseImperfectSubjunctiveRA,
	TenseImperfectSubjunctiveSE,
	TensePresentPerfectSubjunctive,
	TensePluperfectSubjunctive,
}

// Valid reports whether the tense is modeled.
func (t Tense) Valid() bool {
	switch t {
	case TensePresentSubjunctive, TenseImperfectSubjunctiveRA, TenseImperfectSubjunctiveSE,
		TensePresentPerfectSubjunctive, TensePluperfectSubjunctive, TensePresentIndicative:
		return true
	}
	return false
}

// Label returns the learner-facing tense name.
func (t Tense) Label() string {
	switch t {
	case TensePresentSubjunctive:
		return "present subjunctive"
	case TenseImperfectSubjunctiveRA:
		return "imperfect subjunctive (-ra)"
	case TenseImperfectSubjunctiveSE:
		return "imperfect subjunctive (-se)"
	case TensePresentPerfectSubjunctive:
		return "present perfect subjunctive"
	case TensePluperfectSubjunctive:
		return "pluperfect subjunctive"
	case TensePresentIndicative:
		return "present indicative"
	}
	return string(t)
}

// Subjunctive reports whether the tense belongs to the subjunctive mood.
func (t Tense) Subjunctive() bool {
	return t != TensePresentIndicative && t.Valid()
}

// Compound reports whether the tense is formed with auxiliary haber plus
// a past participle.
func (t Tense) Compound() bool {
	return t == TensePresentPerfectSubjunctive || t == TensePluperfectSubjunctive
}

// StemChange is a boot-pattern stem change.
type StemChange string

const (
	StemChangeNone StemChange = ""
	StemChangeEIE  StemChange = "e→ie"
	StemChangeEI   StemChange = "e→i"
	StemChangeOUE  StemChange = "o→ue"
	StemChangeUUE  StemChange = "u→ue"
)

// Valid reports whether the pattern is known (none counts as valid).
func (sc StemChange) Valid() bool {
	switch sc {
	case StemChangeNone, StemChangeEIE, StemChangeEI, StemChangeOUE, StemChangeUUE:
		return true
	}
	return false
}

// SpellingRule is an orthographic adjustment applied at the stem/ending
// boundary to preserve pronunciation.
type SpellingRule string

const (
	SpellingNone SpellingRule = ""
	SpellingCQu  SpellingRule = "c→qu"
	SpellingGGu  SpellingRule = "g→gu"
	SpellingZC   SpellingRule = "z→c"
	SpellingGJ   SpellingRule = "g→j"
	SpellingGuG  SpellingRule = "gu→g"
	SpellingCZc  SpellingRule = "c→zc"
	SpellingCZ   SpellingRule = "c→z"
	SpellingIY   SpellingRule = "i→y"
)
