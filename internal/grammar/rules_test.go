package grammar

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		infinitive string
		wantClass  VerbClass
		wantStem   string
	}{
		{"hablar", ClassAR, "habl"},
		{"comer", ClassER, "com"},
		{"vivir", ClassIR, "viv"},
		{"buscar", ClassAR, "busc"},
		{"oír", ClassIR, "o"},
		{"ir", ClassIR, ""},
		{"ESTUDIAR", ClassAR, "estudi"},
		{"  pensar  ", ClassAR, "pens"},
	}

	for _, tt := range tests {
		t.Run(tt.infinitive, func(t *testing.T) {
			class, stem, err := Classify(tt.infinitive)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.infinitive, err)
			}
			if class != tt.wantClass {
				t.Errorf("class = %q, want %q", class, tt.wantClass)
			}
			if stem != tt.wantStem {
				t.Errorf("stem = %q, want %q", stem, tt.wantStem)
			}
		})
	}
}

func TestClassify_UnknownForm(t *testing.T) {
	for _, inf := range []string{"", "x", "casa", "hablando"} {
		_, _, err := Classify(inf)
		var unknownErr *UnknownVerbFormError
		if !errors.As(err, &unknownErr) {
			t.Errorf("Classify(%q) error = %v, want *UnknownVerbFormError", inf, err)
		}
	}
}

func TestStem_ClassMismatch(t *testing.T) {
	_, err := Stem("hablar", ClassER)
	var invalidErr *InvalidGrammarInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want *InvalidGrammarInputError", err)
	}
}

func TestStem_InvalidClass(t *testing.T) {
	_, err := Stem("hablar", VerbClass("xx"))
	var invalidErr *InvalidGrammarInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want *InvalidGrammarInputError", err)
	}
}

func TestApplySpellingRule(t *testing.T) {
	tests := []struct {
		name     string
		stem     string
		ending   string
		class    VerbClass
		want     string
		wantRule SpellingRule
	}{
		{"buscar hardens c", "busc", "e", ClassAR, "busqu", SpellingCQu},
		{"llegar hardens g", "lleg", "emos", ClassAR, "llegu", SpellingGGu},
		{"empezar z to c", "empiez", "e", ClassAR, "empiec", SpellingZC},
		{"almorzar z to c", "almuerz", "e", ClassAR, "almuerc", SpellingZC},
		{"ar stem before a untouched", "busc", "aba", ClassAR, "busc", SpellingNone},
		{"escoger g to j", "escog", "a", ClassER, "escoj", SpellingGJ},
		{"seguir drops u", "sigu", "a", ClassIR, "sig", SpellingGuG},
		{"conocer c to zc", "conoc", "a", ClassER, "conozc", SpellingCZc},
		{"vencer c to z", "venc", "a", ClassER, "venz", SpellingCZ},
		{"er stem before e untouched", "escog", "emos", ClassER, "escog", SpellingNone},
		{"regular stem untouched", "habl", "e", ClassAR, "habl", SpellingNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := ApplySpellingRule(tt.stem, tt.ending, tt.class)
			if got != tt.want {
				t.Errorf("adjusted stem = %q, want %q", got, tt.want)
			}
			if rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", rule, tt.wantRule)
			}
		})
	}
}
