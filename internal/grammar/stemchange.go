package grammar

import "strings"

// StemChangeApplication describes how a boot-pattern stem change applies
// for a particular person.
type StemChangeApplication int

const (
	// ChangeNone: the base stem is used unchanged.
	ChangeNone StemChangeApplication = iota
	// ChangeFull: the full diphthong/raising change applies (boot persons).
	ChangeFull
	// ChangeReduced: the weak-vowel reduction applies (e→i, o→u). Only
	// nosotros/vosotros of -ir stem-changers take this form.
	ChangeReduced
)

// StemChangeFor determines how a stem-change pattern applies in the present
// subjunctive for the given person. Boot persons (yo, tú, él, ellos) take the
// full change. Nosotros/vosotros lose the change, except that -ir
// stem-changers keep a weak-vowel reduction in those persons.
func StemChangeFor(pattern StemChange, class VerbClass, person Person) (StemChangeApplication, error) {
	if !pattern.Valid() {
		return ChangeNone, &InvalidGrammarInputError{Field: "stem_change", Value: string(pattern)}
	}
	if !person.Valid() {
		return ChangeNone, &InvalidGrammarInputError{Field: "person", Value: person.String()}
	}
	if !class.Valid() {
		return ChangeNone, &InvalidGrammarInputError{Field: "verb_class", Value: string(class)}
	}
	if pattern == StemChangeNone {
		return ChangeNone, nil
	}

	switch person {
	case PersonNosotros, PersonVosotros:
		if class == ClassIR {
			return ChangeReduced, nil
		}
		return ChangeNone, nil
	default:
		return ChangeFull, nil
	}
}

// ApplyStemChange rewrites the last occurrence of the pattern's source vowel
// in the stem. ChangeReduced applies the weak-vowel form (e→i, o→u)
// regardless of the full pattern's target.
func ApplyStemChange(stem string, pattern StemChange, app StemChangeApplication) (string, error) {
	if !pattern.Valid() {
		return "", &InvalidGrammarInputError{Field: "stem_change", Value: string(pattern)}
	}
	if app == ChangeNone || pattern == StemChangeNone {
		return stem, nil
	}

	var source, target string
	switch pattern {
	case StemChangeEIE:
		source, target = "e", "ie"
	case StemChangeEI:
		source, target = "e", "i"
	case StemChangeOUE:
		source, target = "o", "ue"
	case StemChangeUUE:
		source, target = "u", "ue"
	}

	if app == ChangeReduced {
		switch source {
		case "e":
			target = "i"
		case "o":
			target = "u"
		default:
			// u→ue has no reduced form; only -ir verbs reduce and the
			// sole common u→ue verb (jugar) is -ar.
			return stem, nil
		}
	}

	idx := strings.LastIndex(stem, source)
	if idx < 0 {
		return stem, nil
	}
	return stem[:idx] + target + stem[idx+len(source):], nil
}
