package grammar

import "fmt"

// UnknownVerbFormError indicates an infinitive that cannot be classified
// or is absent from the reference data. Not retryable: the caller should
// pick a different verb.
type UnknownVerbFormError struct {
	Infinitive string
}

func (e *UnknownVerbFormError) Error() string {
	return fmt.Sprintf("unknown verb form: %q", e.Infinitive)
}

// UnsupportedTenseError indicates a tense that is not modeled for the
// requested verb. Not retryable: the caller should pick a different tense.
type UnsupportedTenseError struct {
	Infinitive string
	Tense      Tense
}

func (e *UnsupportedTenseError) Error() string {
	return fmt.Sprintf("unsupported tense %q for verb %q", e.Tense, e.Infinitive)
}

// InvalidGrammarInputError indicates a malformed enum value (verb class,
// person, stem-change pattern). Always a caller bug.
type InvalidGrammarInputError struct {
	Field string
	Value string
}

func (e *InvalidGrammarInputError) Error() string {
	return fmt.Sprintf("invalid grammar input: %s = %q", e.Field, e.Value)
}
