package conjugate

import (
	"errors"
	"testing"

	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}
	return NewEngine(lex)
}

func conj(t *testing.T, e *Engine, inf string, tense grammar.Tense, person grammar.Person) *Result {
	t.Helper()
	res, err := e.Conjugate(Request{Infinitive: inf, Tense: tense, Person: person})
	if err != nil {
		t.Fatalf("Conjugate(%s, %s, %v) error: %v", inf, tense, person, err)
	}
	return res
}

func TestConjugate_PresentSubjunctiveRegular(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf    string
		person grammar.Person
		want   string
	}{
		{"hablar", grammar.PersonYo, "hable"},
		{"hablar", grammar.PersonTu, "hables"},
		{"hablar", grammar.PersonEl, "hable"},
		{"hablar", grammar.PersonNosotros, "hablemos"},
		{"hablar", grammar.PersonVosotros, "habléis"},
		{"hablar", grammar.PersonEllos, "hablen"},
		{"comer", grammar.PersonYo, "coma"},
		{"comer", grammar.PersonVosotros, "comáis"},
		{"vivir", grammar.PersonYo, "viva"},
		{"vivir", grammar.PersonNosotros, "vivamos"},
		{"estudiar", grammar.PersonEllos, "estudien"},
		{"creer", grammar.PersonTu, "creas"},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TensePresentSubjunctive, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
		if res.Irregular {
			t.Errorf("%s %v flagged irregular", tt.inf, tt.person)
		}
	}
}

func TestConjugate_SpellingRules(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf      string
		person   grammar.Person
		want     string
		wantRule grammar.SpellingRule
	}{
		{"buscar", grammar.PersonYo, "busque", grammar.SpellingCQu},
		{"buscar", grammar.PersonNosotros, "busquemos", grammar.SpellingCQu},
		{"llegar", grammar.PersonTu, "llegues", grammar.SpellingGGu},
		{"empezar", grammar.PersonYo, "empiece", grammar.SpellingZC},
		{"empezar", grammar.PersonNosotros, "empecemos", grammar.SpellingZC},
		{"jugar", grammar.PersonYo, "juegue", grammar.SpellingGGu},
		{"jugar", grammar.PersonNosotros, "juguemos", grammar.SpellingGGu},
		{"seguir", grammar.PersonYo, "siga", grammar.SpellingGuG},
		{"seguir", grammar.PersonNosotros, "sigamos", grammar.SpellingGuG},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TensePresentSubjunctive, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
		if res.SpellingRule != tt.wantRule {
			t.Errorf("%s %v rule = %q, want %q", tt.inf, tt.person, res.SpellingRule, tt.wantRule)
		}
	}
}

func TestConjugate_StemChanges(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf          string
		person       grammar.Person
		want         string
		stemChanging bool
	}{
		{"querer", grammar.PersonYo, "quiera", true},
		{"querer", grammar.PersonNosotros, "queramos", false},
		{"pensar", grammar.PersonTu, "pienses", true},
		{"pensar", grammar.PersonVosotros, "penséis", false},
		{"poder", grammar.PersonEl, "pueda", true},
		{"poder", grammar.PersonNosotros, "podamos", false},
		{"encontrar", grammar.PersonEllos, "encuentren", true},
		{"sentir", grammar.PersonYo, "sienta", true},
		{"sentir", grammar.PersonNosotros, "sintamos", true},
		{"sentir", grammar.PersonVosotros, "sintáis", true},
		{"dormir", grammar.PersonYo, "duerma", true},
		{"dormir", grammar.PersonNosotros, "durmamos", true},
		{"pedir", grammar.PersonYo, "pida", true},
		{"pedir", grammar.PersonNosotros, "pidamos", true},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TensePresentSubjunctive, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
		if res.StemChanging != tt.stemChanging {
			t.Errorf("%s %v StemChanging = %v, want %v", tt.inf, tt.person, res.StemChanging, tt.stemChanging)
		}
	}
}

func TestConjugate_QuererReportsPattern(t *testing.T) {
	e := testEngine(t)
	res := conj(t, e, "querer", grammar.TensePresentSubjunctive, grammar.PersonYo)

	if !res.StemChanging {
		t.Error("expected StemChanging")
	}
	found := false
	for _, tag := range res.Tags {
		if tag == TagStemChange+":e→ie" {
			found = true
		}
	}
	if !found {
		t.Errorf("tags = %v, want stem-change:e→ie", res.Tags)
	}
}

func TestConjugate_IrregularTableWins(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf    string
		person grammar.Person
		want   string
	}{
		{"ser", grammar.PersonYo, "sea"},
		{"ser", grammar.PersonNosotros, "seamos"},
		{"estar", grammar.PersonYo, "esté"},
		{"ir", grammar.PersonTu, "vayas"},
		{"dar", grammar.PersonYo, "dé"},
		{"saber", grammar.PersonEllos, "sepan"},
		{"tener", grammar.PersonYo, "tenga"},
		{"tener", grammar.PersonNosotros, "tengamos"},
		{"hacer", grammar.PersonYo, "haga"},
		{"decir", grammar.PersonVosotros, "digáis"},
		{"venir", grammar.PersonEl, "venga"},
		{"ver", grammar.PersonYo, "vea"},
		{"haber", grammar.PersonYo, "haya"},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TensePresentSubjunctive, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
		if !res.Irregular {
			t.Errorf("%s %v not flagged irregular", tt.inf, tt.person)
		}
		if len(res.Tags) == 0 || res.Tags[0] != TagIrregularForm {
			t.Errorf("%s %v tags = %v, want irregular-form first", tt.inf, tt.person, res.Tags)
		}
	}
}

func TestConjugate_ImperfectVariants(t *testing.T) {
	e := testEngine(t)

	res := conj(t, e, "hablar", grammar.TenseImperfectSubjunctiveRA, grammar.PersonYo)
	if res.Primary != "hablara" {
		t.Errorf("primary = %q, want hablara", res.Primary)
	}
	if len(res.Alternates) != 1 || res.Alternates[0] != "hablase" {
		t.Errorf("alternates = %v, want [hablase]", res.Alternates)
	}

	res = conj(t, e, "hablar", grammar.TenseImperfectSubjunctiveSE, grammar.PersonYo)
	if res.Primary != "hablase" {
		t.Errorf("primary = %q, want hablase", res.Primary)
	}
	if len(res.Alternates) != 1 || res.Alternates[0] != "hablara" {
		t.Errorf("alternates = %v, want [hablara]", res.Alternates)
	}
}

func TestConjugate_ImperfectForms(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf       string
		person    grammar.Person
		want      string
		irregular bool
	}{
		{"hablar", grammar.PersonNosotros, "habláramos", false},
		{"comer", grammar.PersonYo, "comiera", false},
		{"vivir", grammar.PersonEllos, "vivieran", false},
		{"ser", grammar.PersonYo, "fuera", true},
		{"ser", grammar.PersonNosotros, "fuéramos", true},
		{"ir", grammar.PersonTu, "fueras", true},
		{"tener", grammar.PersonYo, "tuviera", true},
		{"tener", grammar.PersonNosotros, "tuviéramos", true},
		{"estar", grammar.PersonEl, "estuviera", true},
		{"decir", grammar.PersonYo, "dijera", true},
		{"decir", grammar.PersonNosotros, "dijéramos", true},
		{"dar", grammar.PersonYo, "diera", true},
		{"saber", grammar.PersonTu, "supieras", true},
		{"poder", grammar.PersonYo, "pudiera", true},
		{"querer", grammar.PersonEllos, "quisieran", true},
		{"hacer", grammar.PersonYo, "hiciera", true},
		{"venir", grammar.PersonYo, "viniera", true},
		{"haber", grammar.PersonYo, "hubiera", true},
		{"sentir", grammar.PersonYo, "sintiera", false},
		{"dormir", grammar.PersonEl, "durmiera", false},
		{"pedir", grammar.PersonTu, "pidieras", false},
		{"seguir", grammar.PersonYo, "siguiera", false},
		{"creer", grammar.PersonYo, "creyera", false},
		{"creer", grammar.PersonNosotros, "creyéramos", false},
		{"ver", grammar.PersonYo, "viera", false},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TenseImperfectSubjunctiveRA, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
		if res.Irregular != tt.irregular {
			t.Errorf("%s %v Irregular = %v, want %v", tt.inf, tt.person, res.Irregular, tt.irregular)
		}
	}
}

func TestConjugate_CompoundTenses(t *testing.T) {
	e := testEngine(t)

	res := conj(t, e, "hablar", grammar.TensePresentPerfectSubjunctive, grammar.PersonYo)
	if res.Primary != "haya hablado" {
		t.Errorf("primary = %q, want %q", res.Primary, "haya hablado")
	}
	if len(res.Alternates) != 0 {
		t.Errorf("alternates = %v, want none", res.Alternates)
	}

	res = conj(t, e, "hacer", grammar.TensePluperfectSubjunctive, grammar.PersonYo)
	if res.Primary != "hubiera hecho" {
		t.Errorf("primary = %q, want %q", res.Primary, "hubiera hecho")
	}
	if len(res.Alternates) != 1 || res.Alternates[0] != "hubiese hecho" {
		t.Errorf("alternates = %v, want [hubiese hecho]", res.Alternates)
	}
	if !res.Irregular {
		t.Error("hecho should flag the result irregular")
	}

	tests := []struct {
		inf    string
		tense  grammar.Tense
		person grammar.Person
		want   string
	}{
		{"ver", grammar.TensePresentPerfectSubjunctive, grammar.PersonTu, "hayas visto"},
		{"decir", grammar.TensePluperfectSubjunctive, grammar.PersonEllos, "hubieran dicho"},
		{"creer", grammar.TensePresentPerfectSubjunctive, grammar.PersonYo, "haya creído"},
		{"ser", grammar.TensePresentPerfectSubjunctive, grammar.PersonNosotros, "hayamos sido"},
		{"ir", grammar.TensePluperfectSubjunctive, grammar.PersonYo, "hubiera ido"},
		{"vivir", grammar.TensePresentPerfectSubjunctive, grammar.PersonVosotros, "hayáis vivido"},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, tt.tense, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %s %v = %q, want %q", tt.inf, tt.tense, tt.person, res.Primary, tt.want)
		}
	}
}

func TestConjugate_PresentIndicative(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		inf    string
		person grammar.Person
		want   string
	}{
		{"hablar", grammar.PersonYo, "hablo"},
		{"hablar", grammar.PersonEl, "habla"},
		{"tener", grammar.PersonYo, "tengo"},
		{"tener", grammar.PersonTu, "tienes"},
		{"tener", grammar.PersonNosotros, "tenemos"},
		{"sentir", grammar.PersonNosotros, "sentimos"},
		{"decir", grammar.PersonTu, "dices"},
		{"decir", grammar.PersonNosotros, "decimos"},
		{"ser", grammar.PersonYo, "soy"},
		{"ver", grammar.PersonVosotros, "veis"},
		{"seguir", grammar.PersonYo, "sigo"},
		{"jugar", grammar.PersonYo, "juego"},
	}

	for _, tt := range tests {
		res := conj(t, e, tt.inf, grammar.TensePresentIndicative, tt.person)
		if res.Primary != tt.want {
			t.Errorf("%s %v = %q, want %q", tt.inf, tt.person, res.Primary, tt.want)
		}
	}
}

func TestConjugate_Errors(t *testing.T) {
	e := testEngine(t)

	_, err := e.Conjugate(Request{Infinitive: "bailar", Tense: grammar.TensePresentSubjunctive, Person: grammar.PersonYo})
	var unknownErr *grammar.UnknownVerbFormError
	if !errors.As(err, &unknownErr) {
		t.Errorf("unknown verb: error = %v, want *UnknownVerbFormError", err)
	}

	_, err = e.Conjugate(Request{Infinitive: "hablar", Tense: grammar.Tense("future_subjunctive"), Person: grammar.PersonYo})
	var tenseErr *grammar.UnsupportedTenseError
	if !errors.As(err, &tenseErr) {
		t.Errorf("bad tense: error = %v, want *UnsupportedTenseError", err)
	}

	_, err = e.Conjugate(Request{Infinitive: "hablar", Tense: grammar.TensePresentSubjunctive, Person: grammar.Person(42)})
	var inputErr *grammar.InvalidGrammarInputError
	if !errors.As(err, &inputErr) {
		t.Errorf("bad person: error = %v, want *InvalidGrammarInputError", err)
	}
}

func TestParticiple(t *testing.T) {
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}

	tests := []struct {
		inf       string
		want      string
		irregular bool
	}{
		{"hablar", "hablado", false},
		{"comer", "comido", false},
		{"vivir", "vivido", false},
		{"creer", "creído", false},
		{"hacer", "hecho", true},
		{"ver", "visto", true},
		{"decir", "dicho", true},
		{"ir", "ido", false},
		{"ser", "sido", false},
	}

	for _, tt := range tests {
		rec, ok := lex.Lookup(tt.inf)
		if !ok {
			t.Fatalf("missing %q", tt.inf)
		}
		pp, irregular, err := participle(rec)
		if err != nil {
			t.Fatalf("participle(%s) error: %v", tt.inf, err)
		}
		if pp != tt.want {
			t.Errorf("participle(%s) = %q, want %q", tt.inf, pp, tt.want)
		}
		if irregular != tt.irregular {
			t.Errorf("participle(%s) irregular = %v, want %v", tt.inf, irregular, tt.irregular)
		}
	}
}
