package verbs

import (
	"fmt"
	"sort"

	"github.com/idelarosa/subjunto/internal/grammar"
)

// Lexicon is the immutable verb reference dataset. It is built once and
// shared by reference; nothing mutates it after construction, so it is safe
// for concurrent readers. There is deliberately no package-global instance:
// each engine receives its own Lexicon so tests and embedders stay isolated.
type Lexicon struct {
	records map[string]*Record
	ordered []*Record
}

// NewLexicon builds a Lexicon from verb records, validating that each
// record's class matches its infinitive and that enums are well-formed.
func NewLexicon(records []Record) (*Lexicon, error) {
	lex := &Lexicon{records: make(map[string]*Record, len(records))}

	for i := range records {
		rec := records[i]
		class, _, err := grammar.Classify(rec.Infinitive)
		if err != nil {
			return nil, fmt.Errorf("verb %q: %w", rec.Infinitive, err)
		}
		if class != rec.Class {
			return nil, fmt.Errorf("verb %q: class %q does not match infinitive", rec.Infinitive, rec.Class)
		}
		if !rec.StemChange.Valid() {
			return nil, fmt.Errorf("verb %q: unknown stem change %q", rec.Infinitive, rec.StemChange)
		}
		if _, dup := lex.records[rec.Infinitive]; dup {
			return nil, fmt.Errorf("verb %q: duplicate entry", rec.Infinitive)
		}
		lex.records[rec.Infinitive] = &rec
		lex.ordered = append(lex.ordered, &rec)
	}

	sort.Slice(lex.ordered, func(i, j int) bool {
		if lex.ordered[i].Frequency != lex.ordered[j].Frequency {
			return lex.ordered[i].Frequency < lex.ordered[j].Frequency
		}
		return lex.ordered[i].Infinitive < lex.ordered[j].Infinitive
	})

	return lex, nil
}

// Default builds the Lexicon from the curated seed dataset. It panics only
// if the seed itself is malformed, which the package tests rule out.
func Default() *Lexicon {
	lex, err := NewLexicon(Seed())
	if err != nil {
		panic("verbs: invalid seed dataset: " + err.Error())
	}
	return lex
}

// Lookup returns the record for an infinitive.
func (l *Lexicon) Lookup(infinitive string) (*Record, bool) {
	rec, ok := l.records[infinitive]
	return rec, ok
}

// All returns every record ordered by frequency rank.
func (l *Lexicon) All() []*Record {
	out := make([]*Record, len(l.ordered))
	copy(out, l.ordered)
	return out
}

// Len returns the number of verbs in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.records)
}
