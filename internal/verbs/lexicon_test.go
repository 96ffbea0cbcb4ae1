package verbs

import (
	"testing"

	"github.com/idelarosa/subjunto/internal/grammar"
)

func TestSeed_BuildsValidLexicon(t *testing.T) {
	lex, err := NewLexicon(Seed())
	if err != nil {
		t.Fatalf("NewLexicon(Seed()) error: %v", err)
	}
	if lex.Len() < 20 {
		t.Errorf("seed has %d verbs, want at least 20", lex.Len())
	}

	// Every verb named in the documented seed set must be present.
	required := []string{
		"ser", "estar", "tener", "hacer", "poder", "ir", "ver", "dar",
		"saber", "querer", "hablar", "vivir", "pensar", "venir", "decir",
		"encontrar", "pedir", "sentir", "dormir", "creer", "estudiar",
	}
	for _, inf := range required {
		if _, ok := lex.Lookup(inf); !ok {
			t.Errorf("seed missing verb %q", inf)
		}
	}
}

func TestSeed_IrregularTablesCoverSubjunctive(t *testing.T) {
	lex, err := NewLexicon(Seed())
	if err != nil {
		t.Fatalf("NewLexicon error: %v", err)
	}

	// Fully irregular present subjunctive paradigms must cover all six persons.
	fullTables := []string{"ser", "estar", "ir", "dar", "saber", "tener", "hacer", "decir", "venir", "haber"}
	for _, inf := range fullTables {
		rec, ok := lex.Lookup(inf)
		if !ok {
			t.Fatalf("missing %q", inf)
		}
		for _, p := range grammar.Persons {
			if _, ok := rec.Form(grammar.TensePresentSubjunctive, p); !ok {
				t.Errorf("%s: missing present subjunctive form for %v", inf, p)
			}
		}
	}
}

func TestNewLexicon_RejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"class mismatch", []Record{{Infinitive: "hablar", Class: grammar.ClassER}}},
		{"not an infinitive", []Record{{Infinitive: "casa", Class: grammar.ClassAR}}},
		{"bad stem change", []Record{{Infinitive: "hablar", Class: grammar.ClassAR, StemChange: grammar.StemChange("x→y")}}},
		{"duplicate", []Record{
			{Infinitive: "hablar", Class: grammar.ClassAR},
			{Infinitive: "hablar", Class: grammar.ClassAR},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLexicon(tt.records); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAll_OrderedByFrequency(t *testing.T) {
	lex := Default()
	all := lex.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Frequency > all[i].Frequency {
			t.Fatalf("All() not ordered by frequency at index %d", i)
		}
	}
	if all[0].Infinitive != "ser" {
		t.Errorf("most frequent verb = %q, want ser", all[0].Infinitive)
	}
}
