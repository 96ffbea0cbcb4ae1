package validate

import (
	"testing"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

func testValidator(t *testing.T) (*Validator, *conjugate.Engine) {
	t.Helper()
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}
	engine := conjugate.NewEngine(lex)
	return NewValidator(engine), engine
}

func mustConjugate(t *testing.T, e *conjugate.Engine, inf string, tense grammar.Tense, person grammar.Person) *conjugate.Result {
	t.Helper()
	res, err := e.Conjugate(conjugate.Request{Infinitive: inf, Tense: tense, Person: person})
	if err != nil {
		t.Fatalf("Conjugate(%s, %s, %v): %v", inf, tense, person, err)
	}
	return res
}

func TestValidate_RoundTrip(t *testing.T) {
	v, e := testValidator(t)

	// Every accepted form the engine emits must validate as correct,
	// for every verb, subjunctive tense, and person in the seed.
	for _, rec := range e.Lexicon().All() {
		for _, tense := range grammar.SubjunctiveTenses {
			for _, person := range grammar.Persons {
				res := mustConjugate(t, e, rec.Infinitive, tense, person)
				for _, form := range res.Accepted() {
					out := v.Validate(res, form)
					if out.Classification != Correct {
						t.Errorf("%s %s %v: %q classified %s", rec.Infinitive, tense, person, form, out.Classification)
					}
					if out.Distance != 0 {
						t.Errorf("%s %s %v: %q distance = %d", rec.Infinitive, tense, person, form, out.Distance)
					}
				}
			}
		}
	}
}

func TestValidate_NormalizesInput(t *testing.T) {
	v, e := testValidator(t)

	res := mustConjugate(t, e, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)
	for _, raw := range []string{"  hable ", "HABLE", "Hable"} {
		out := v.Validate(res, raw)
		if out.Classification != Correct {
			t.Errorf("%q classified %s, want correct", raw, out.Classification)
		}
	}

	compound := mustConjugate(t, e, "hablar", grammar.TensePresentPerfectSubjunctive, grammar.PersonYo)
	out := v.Validate(compound, "haya   hablado")
	if out.Classification != Correct {
		t.Errorf("double-spaced compound classified %s, want correct", out.Classification)
	}
}

func TestValidate_StrippedAccentsAreMinorTypo(t *testing.T) {
	v, e := testValidator(t)

	tests := []struct {
		inf    string
		tense  grammar.Tense
		person grammar.Person
		answer string
	}{
		{"hablar", grammar.TenseImperfectSubjunctiveRA, grammar.PersonNosotros, "hablaramos"},
		{"hablar", grammar.TensePresentSubjunctive, grammar.PersonVosotros, "hableis"},
		{"estar", grammar.TensePresentSubjunctive, grammar.PersonYo, "este"},
		{"creer", grammar.TensePresentPerfectSubjunctive, grammar.PersonYo, "haya creido"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, e, tt.inf, tt.tense, tt.person)
		out := v.Validate(res, tt.answer)
		if out.Classification != MinorTypo {
			t.Errorf("%q for %s %s %v classified %s, want minor_typo", tt.answer, tt.inf, tt.tense, tt.person, out.Classification)
		}
		if out.Correct {
			t.Errorf("%q marked correct", tt.answer)
		}
		if out.Distance < 1 {
			t.Errorf("%q distance = %d, want >= 1", tt.answer, out.Distance)
		}
	}
}

func TestValidate_WrongPerson(t *testing.T) {
	v, e := testValidator(t)

	res := mustConjugate(t, e, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)
	out := v.Validate(res, "hables")
	if out.Classification != WrongPerson {
		t.Fatalf("classified %s, want wrong_person", out.Classification)
	}
	if out.ActualPerson != grammar.PersonTu {
		t.Errorf("ActualPerson = %v, want tú", out.ActualPerson)
	}
	if out.MatchedForm != "hables" {
		t.Errorf("MatchedForm = %q, want hables", out.MatchedForm)
	}
}

func TestValidate_WrongTense(t *testing.T) {
	v, e := testValidator(t)

	res := mustConjugate(t, e, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)

	out := v.Validate(res, "hablara")
	if out.Classification != WrongTense {
		t.Fatalf("hablara classified %s, want wrong_tense", out.Classification)
	}
	if out.ActualTense != grammar.TenseImperfectSubjunctiveRA {
		t.Errorf("ActualTense = %s, want imperfect -ra", out.ActualTense)
	}

	out = v.Validate(res, "haya hablado")
	if out.Classification != WrongTense {
		t.Errorf("compound answer classified %s, want wrong_tense", out.Classification)
	}
}

func TestValidate_ImperfectVariantIsCorrectNotWrongTense(t *testing.T) {
	v, e := testValidator(t)

	// The -se form is an accepted alternate of a -ra request, never a
	// tense error.
	res := mustConjugate(t, e, "hablar", grammar.TenseImperfectSubjunctiveRA, grammar.PersonYo)
	out := v.Validate(res, "hablase")
	if out.Classification != Correct {
		t.Errorf("hablase classified %s, want correct", out.Classification)
	}
}

func TestValidate_WrongMood(t *testing.T) {
	v, e := testValidator(t)

	tests := []struct {
		inf    string
		person grammar.Person
		answer string
	}{
		{"hablar", grammar.PersonYo, "hablo"},
		{"tener", grammar.PersonTu, "tienes"},
		{"ser", grammar.PersonYo, "soy"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, e, tt.inf, grammar.TensePresentSubjunctive, tt.person)
		out := v.Validate(res, tt.answer)
		if out.Classification != WrongMood {
			t.Errorf("%q for %s classified %s, want wrong_mood", tt.answer, tt.inf, out.Classification)
		}
		if out.MatchedForm != tt.answer {
			t.Errorf("MatchedForm = %q, want %q", out.MatchedForm, tt.answer)
		}
	}
}

func TestValidate_Unrecognized(t *testing.T) {
	v, e := testValidator(t)

	res := mustConjugate(t, e, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)

	out := v.Validate(res, "zzzz")
	if out.Classification != Unrecognized {
		t.Errorf("zzzz classified %s, want unrecognized", out.Classification)
	}
	if out.Distance == 0 {
		t.Error("distance should be nonzero for a miss")
	}

	out = v.Validate(res, "")
	if out.Classification != Unrecognized {
		t.Errorf("empty answer classified %s, want unrecognized", out.Classification)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Hable  ", "hable"},
		{"HAYA  HABLADO", "haya hablado"},
		{"hubiera\thecho", "hubiera hecho"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldAccents(t *testing.T) {
	tests := []struct{ in, want string }{
		{"habláramos", "hablaramos"},
		{"esté", "este"},
		{"hayáis", "hayais"},
		{"hable", "hable"},
	}
	for _, tt := range tests {
		if got := FoldAccents(tt.in); got != tt.want {
			t.Errorf("FoldAccents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
