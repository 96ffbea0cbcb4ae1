package grammar

import (
	"errors"
	"testing"
)

func TestStemChangeFor_BootPersons(t *testing.T) {
	boot := []Person{PersonYo, PersonTu, PersonEl, PersonEllos}
	for _, p := range boot {
		app, err := StemChangeFor(StemChangeEIE, ClassAR, p)
		if err != nil {
			t.Fatalf("StemChangeFor(%v) error: %v", p, err)
		}
		if app != ChangeFull {
			t.Errorf("StemChangeFor(%v) = %v, want ChangeFull", p, app)
		}
	}
}

func TestStemChangeFor_NosotrosVosotros(t *testing.T) {
	tests := []struct {
		name    string
		pattern StemChange
		class   VerbClass
		person  Person
		want    StemChangeApplication
	}{
		{"ar verb loses change", StemChangeEIE, ClassAR, PersonNosotros, ChangeNone},
		{"er verb loses change", StemChangeOUE, ClassER, PersonVosotros, ChangeNone},
		{"ir e→ie reduces", StemChangeEIE, ClassIR, PersonNosotros, ChangeReduced},
		{"ir o→ue reduces", StemChangeOUE, ClassIR, PersonVosotros, ChangeReduced},
		{"ir e→i reduces", StemChangeEI, ClassIR, PersonNosotros, ChangeReduced},
		{"no pattern no change", StemChangeNone, ClassIR, PersonYo, ChangeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := StemChangeFor(tt.pattern, tt.class, tt.person)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if app != tt.want {
				t.Errorf("application = %v, want %v", app, tt.want)
			}
		})
	}
}

func TestStemChangeFor_InvalidInputs(t *testing.T) {
	var invalidErr *InvalidGrammarInputError

	_, err := StemChangeFor(StemChange("a→b"), ClassAR, PersonYo)
	if !errors.As(err, &invalidErr) {
		t.Errorf("bad pattern: error = %v, want *InvalidGrammarInputError", err)
	}

	_, err = StemChangeFor(StemChangeEIE, ClassAR, Person(9))
	if !errors.As(err, &invalidErr) {
		t.Errorf("bad person: error = %v, want *InvalidGrammarInputError", err)
	}

	_, err = StemChangeFor(StemChangeEIE, VerbClass("zz"), PersonYo)
	if !errors.As(err, &invalidErr) {
		t.Errorf("bad class: error = %v, want *InvalidGrammarInputError", err)
	}
}

func TestApplyStemChange(t *testing.T) {
	tests := []struct {
		name    string
		stem    string
		pattern StemChange
		app     StemChangeApplication
		want    string
	}{
		{"pensar e→ie", "pens", StemChangeEIE, ChangeFull, "piens"},
		{"querer e→ie", "quer", StemChangeEIE, ChangeFull, "quier"},
		{"encontrar o→ue last o", "encontr", StemChangeOUE, ChangeFull, "encuentr"},
		{"dormir o→ue", "dorm", StemChangeOUE, ChangeFull, "duerm"},
		{"pedir e→i", "ped", StemChangeEI, ChangeFull, "pid"},
		{"jugar u→ue", "jug", StemChangeUUE, ChangeFull, "jueg"},
		{"sentir reduced", "sent", StemChangeEIE, ChangeReduced, "sint"},
		{"dormir reduced", "dorm", StemChangeOUE, ChangeReduced, "durm"},
		{"pedir reduced", "ped", StemChangeEI, ChangeReduced, "pid"},
		{"no application", "pens", StemChangeEIE, ChangeNone, "pens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyStemChange(tt.stem, tt.pattern, tt.app)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ApplyStemChange(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}
