// Package exercise composes the conjugation engine, validator,
// scheduler, and difficulty selector into drill generation and
// submission. It is the only package that sees all of them at once;
// everything here is thin composition over the leaf components.
package exercise

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// Exercise is one generated drill item. The conjugation result is kept
// so submission can validate without re-deriving.
type Exercise struct {
	ID       uuid.UUID
	Scenario Scenario
	Verb     *verbs.Record
	Tense    grammar.Tense
	Person   grammar.Person
	Tier     int

	Result *conjugate.Result
}

// Prompt renders the fill-in-the-blank sentence, e.g.
// "Espero que tú ___ (hablar)".
func (e *Exercise) Prompt() string {
	return fmt.Sprintf("%s %s ___ (%s)", e.Scenario.Lead(e.Tense), e.Person, e.Verb.Infinitive)
}

// Hint names the tense and any rule the verb needs, without revealing
// the form.
func (e *Exercise) Hint() string {
	hint := e.Tense.Label()
	switch {
	case e.Result.Irregular:
		hint += ", irregular"
	case e.Result.StemChanging:
		hint += fmt.Sprintf(", stem change %s", e.Verb.StemChange)
	case e.Result.SpellingRule != grammar.SpellingNone:
		hint += fmt.Sprintf(", spelling %s", e.Result.SpellingRule)
	}
	return hint
}

// Accepted returns every form scored as correct.
func (e *Exercise) Accepted() []string {
	return e.Result.Accepted()
}
