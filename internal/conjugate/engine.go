package conjugate

import (
	"strings"

	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// Engine derives subjunctive conjugations from an immutable verb lexicon.
// It holds no mutable state and is safe for concurrent use once built.
type Engine struct {
	lexicon *verbs.Lexicon
}

// NewEngine creates an Engine over the given lexicon.
func NewEngine(lexicon *verbs.Lexicon) *Engine {
	return &Engine{lexicon: lexicon}
}

// Lexicon returns the engine's verb reference data.
func (e *Engine) Lexicon() *verbs.Lexicon {
	return e.lexicon
}

// Conjugate produces the correct form(s) for a request. Explicit table
// entries always win over rule derivation; everything else goes through
// the grammar rule processor.
func (e *Engine) Conjugate(req Request) (*Result, error) {
	if !req.Person.Valid() {
		return nil, &grammar.InvalidGrammarInputError{Field: "person", Value: req.Person.String()}
	}
	if !req.Tense.Valid() {
		return nil, &grammar.UnsupportedTenseError{Infinitive: req.Infinitive, Tense: req.Tense}
	}

	infinitive := strings.ToLower(strings.TrimSpace(req.Infinitive))
	rec, ok := e.lexicon.Lookup(infinitive)
	if !ok {
		return nil, &grammar.UnknownVerbFormError{Infinitive: req.Infinitive}
	}

	switch req.Tense {
	case grammar.TensePresentSubjunctive, grammar.TensePresentIndicative:
		return e.simple(rec, req.Tense, req.Person)
	case grammar.TenseImperfectSubjunctiveRA, grammar.TenseImperfectSubjunctiveSE:
		return e.imperfect(rec, req.Tense, req.Person)
	case grammar.TensePresentPerfectSubjunctive, grammar.TensePluperfectSubjunctive:
		return e.compound(rec, req.Tense, req.Person)
	}
	return nil, &grammar.UnsupportedTenseError{Infinitive: req.Infinitive, Tense: req.Tense}
}

// simple handles the single-word present tenses.
func (e *Engine) simple(rec *verbs.Record, tense grammar.Tense, person grammar.Person) (*Result, error) {
	res := &Result{Verb: rec, Tense: tense, Person: person}

	if form, ok := rec.Form(tense, person); ok {
		res.Primary = form
		res.Irregular = true
		res.Tags = []string{TagIrregularForm}
		return res, nil
	}

	stem, err := grammar.Stem(rec.Infinitive, rec.Class)
	if err != nil {
		return nil, err
	}
	ending := endingFor(tense, rec.Class, person)

	app, err := e.stemChangeApplication(rec, tense, person)
	if err != nil {
		return nil, err
	}
	changed, err := grammar.ApplyStemChange(stem, rec.StemChange, app)
	if err != nil {
		return nil, err
	}

	adjusted, rule := grammar.ApplySpellingRule(changed, ending, rec.Class)

	res.Primary = adjusted + ending
	res.StemUsed = adjusted
	res.EndingApplied = ending
	res.SpellingRule = rule

	switch app {
	case grammar.ChangeFull:
		res.StemChanging = true
		res.Tags = append(res.Tags, TagStemChange+":"+string(rec.StemChange))
	case grammar.ChangeReduced:
		res.StemChanging = true
		res.Tags = append(res.Tags, TagWeakVowelReduction)
	}
	if rule != grammar.SpellingNone {
		res.Tags = append(res.Tags, TagSpellingRule+":"+string(rule))
	}
	if len(res.Tags) == 0 {
		res.Tags = []string{TagRegular}
	}
	return res, nil
}

// stemChangeApplication decides how the record's pattern applies. Present
// subjunctive follows the boot rule with -ir weak-vowel reduction; present
// indicative keeps the plain boot (no reduction in nosotros/vosotros).
func (e *Engine) stemChangeApplication(rec *verbs.Record, tense grammar.Tense, person grammar.Person) (grammar.StemChangeApplication, error) {
	if rec.StemChange == grammar.StemChangeNone {
		return grammar.ChangeNone, nil
	}
	if tense == grammar.TensePresentIndicative {
		if person == grammar.PersonNosotros || person == grammar.PersonVosotros {
			return grammar.ChangeNone, nil
		}
		return grammar.ChangeFull, nil
	}
	return grammar.StemChangeFor(rec.StemChange, rec.Class, person)
}

// imperfect builds both the -ra and -se forms; the requested variant is
// primary and the other is always an accepted alternate.
func (e *Engine) imperfect(rec *verbs.Record, tense grammar.Tense, person grammar.Person) (*Result, error) {
	res := &Result{Verb: rec, Tense: tense, Person: person}

	stem, irregularStem, reduced, rule, err := e.imperfectStem(rec)
	if err != nil {
		return nil, err
	}

	raForm := imperfectForm(rec, grammar.TenseImperfectSubjunctiveRA, person, stem, imperfectRAEndings)
	seForm := imperfectForm(rec, grammar.TenseImperfectSubjunctiveSE, person, stem, imperfectSEEndings)

	if tense == grammar.TenseImperfectSubjunctiveRA {
		res.Primary = raForm
		res.Alternates = []string{seForm}
		res.EndingApplied = imperfectRAEndings[person]
	} else {
		res.Primary = seForm
		res.Alternates = []string{raForm}
		res.EndingApplied = imperfectSEEndings[person]
	}
	res.StemUsed = stem
	res.SpellingRule = rule
	res.Irregular = irregularStem
	res.StemChanging = reduced

	res.Tags = []string{TagImperfectVariants}
	if irregularStem {
		res.Tags = append(res.Tags, TagIrregularStem)
	} else if reduced {
		res.Tags = append(res.Tags, TagWeakVowelReduction)
	}
	if rule != grammar.SpellingNone {
		res.Tags = append(res.Tags, TagSpellingRule+":"+string(rule))
	}
	return res, nil
}

// imperfectStem computes the shared stem for both imperfect variants.
// Irregular preterite stems (tuvie, dije, fue) come from the record;
// regular -ar verbs use stem+a, -er/-ir use stem+ie with the i→y
// adjustment after a bare vowel and weak-vowel reduction for -ir
// stem-changers (sintiera, durmiera, pidiera).
func (e *Engine) imperfectStem(rec *verbs.Record) (stem string, irregular, reduced bool, rule grammar.SpellingRule, err error) {
	if rec.ImperfectStem != "" {
		return rec.ImperfectStem, true, false, grammar.SpellingNone, nil
	}

	base, err := grammar.Stem(rec.Infinitive, rec.Class)
	if err != nil {
		return "", false, false, grammar.SpellingNone, err
	}

	if rec.Class == grammar.ClassAR {
		return base + "a", false, false, grammar.SpellingNone, nil
	}

	if rec.Class == grammar.ClassIR && rec.StemChange != grammar.StemChangeNone {
		base, err = grammar.ApplyStemChange(base, rec.StemChange, grammar.ChangeReduced)
		if err != nil {
			return "", false, false, grammar.SpellingNone, err
		}
		reduced = true
	}

	switch {
	case strings.HasSuffix(base, "gu") || strings.HasSuffix(base, "qu"):
		// Digraph: the u is silent, no hiatus (siguiera).
		return base + "ie", false, reduced, grammar.SpellingNone, nil
	case endsInVowel(base):
		return base + "ye", false, reduced, grammar.SpellingIY, nil
	default:
		return base + "ie", false, reduced, grammar.SpellingNone, nil
	}
}

// imperfectForm assembles one imperfect variant, honoring table overrides
// and the accented nosotros stem.
func imperfectForm(rec *verbs.Record, tense grammar.Tense, person grammar.Person, stem string, endings [6]string) string {
	if form, ok := rec.Form(tense, person); ok {
		return form
	}
	if person == grammar.PersonNosotros {
		return accentFinalVowel(stem) + endings[person]
	}
	return stem + endings[person]
}

// compound handles the haber + participle tenses.
func (e *Engine) compound(rec *verbs.Record, tense grammar.Tense, person grammar.Person) (*Result, error) {
	res := &Result{Verb: rec, Tense: tense, Person: person}

	if form, ok := rec.Form(tense, person); ok {
		res.Primary = form
		res.Irregular = true
		res.Tags = []string{TagIrregularForm, TagCompound}
		return res, nil
	}

	pp, irregularPP, err := participle(rec)
	if err != nil {
		return nil, err
	}

	switch tense {
	case grammar.TensePresentPerfectSubjunctive:
		res.Primary = hayaForms[person] + " " + pp
	case grammar.TensePluperfectSubjunctive:
		res.Primary = hubieraForms[person] + " " + pp
		res.Alternates = []string{hubieseForms[person] + " " + pp}
	}

	res.StemUsed = pp
	res.Irregular = irregularPP
	res.Tags = []string{TagCompound}
	if irregularPP {
		res.Tags = append(res.Tags, TagIrregularParticple)
	}
	return res, nil
}

func endingFor(tense grammar.Tense, class grammar.VerbClass, person grammar.Person) string {
	if tense == grammar.TensePresentIndicative {
		return presentIndicativeEndings[class][person]
	}
	return presentSubjunctiveEndings[class][person]
}

func endsInVowel(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return strings.ContainsRune("aeiou", runes[len(runes)-1])
}
