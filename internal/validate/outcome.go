package validate

import "github.com/idelarosa/subjunto/internal/grammar"

// Classification buckets a learner's answer. The buckets drive both the
// feedback message and the quality signal fed to the scheduler.
type Classification string

const (
	Correct      Classification = "correct"
	MinorTypo    Classification = "minor_typo"
	WrongPerson  Classification = "wrong_person"
	WrongTense   Classification = "wrong_tense"
	WrongMood    Classification = "wrong_mood"
	Unrecognized Classification = "unrecognized"
)

// Valid reports whether c is a known classification.
func (c Classification) Valid() bool {
	switch c {
	case Correct, MinorTypo, WrongPerson, WrongTense, WrongMood, Unrecognized:
		return true
	}
	return false
}

// Outcome is the validator's verdict on one attempt.
type Outcome struct {
	Classification Classification
	Correct        bool

	// MatchedForm is the accepted form the answer matched, or the valid
	// conjugation it collided with for the wrong_* classifications.
	// Empty for unrecognized.
	MatchedForm string

	// Distance is the Levenshtein distance to the nearest accepted form,
	// recorded for every attempt for near-miss feedback.
	Distance int

	// ActualPerson is set for wrong_person: the person whose form the
	// learner actually produced.
	ActualPerson grammar.Person

	// ActualTense is set for wrong_tense: the tense whose form the
	// learner actually produced.
	ActualTense grammar.Tense
}
