package grammar

import (
	"strings"
	"unicode/utf8"
)

// Classify determines the verb class and stem of an infinitive.
// Returns *UnknownVerbFormError if the infinitive does not end in
// -ar, -er, -ir (or accented -ír, as in oír).
func Classify(infinitive string) (VerbClass, string, error) {
	inf := strings.ToLower(strings.TrimSpace(infinitive))
	if utf8.RuneCountInString(inf) < 2 {
		return "", "", &UnknownVerbFormError{Infinitive: infinitive}
	}

	switch {
	case strings.HasSuffix(inf, "ar"):
		return ClassAR, strings.TrimSuffix(inf, "ar"), nil
	case strings.HasSuffix(inf, "er"):
		return ClassER, strings.TrimSuffix(inf, "er"), nil
	case strings.HasSuffix(inf, "ir"):
		return ClassIR, strings.TrimSuffix(inf, "ir"), nil
	case strings.HasSuffix(inf, "ír"):
		return ClassIR, strings.TrimSuffix(inf, "ír"), nil
	}
	return "", "", &UnknownVerbFormError{Infinitive: infinitive}
}

// Stem strips the two-letter class ending from an infinitive.
// The class must match the infinitive; use Classify when it is unknown.
func Stem(infinitive string, class VerbClass) (string, error) {
	if !class.Valid() {
		return "", &InvalidGrammarInputError{Field: "verb_class", Value: string(class)}
	}
	got, stem, err := Classify(infinitive)
	if err != nil {
		return "", err
	}
	if got != class {
		return "", &InvalidGrammarInputError{Field: "verb_class", Value: string(class)}
	}
	return stem, nil
}

// ApplySpellingRule adjusts the stem so that appending the ending keeps the
// consonant sound of the infinitive. -ar verbs harden before the e-endings of
// the present subjunctive (c→qu, g→gu, z→c); -er/-ir verbs adjust before
// a/o endings (g→j, gu→g, c→zc after a vowel, c→z after a consonant).
func ApplySpellingRule(stem, ending string, class VerbClass) (string, SpellingRule) {
	if stem == "" || ending == "" {
		return stem, SpellingNone
	}
	first, _ := utf8.DecodeRuneInString(ending)

	switch class {
	case ClassAR:
		if first != 'e' && first != 'é' {
			return stem, SpellingNone
		}
		switch {
		case strings.HasSuffix(stem, "c"):
			return stem[:len(stem)-1] + "qu", SpellingCQu
		case strings.HasSuffix(stem, "gu"):
			return stem, SpellingNone
		case strings.HasSuffix(stem, "g"):
			return stem + "u", SpellingGGu
		case strings.HasSuffix(stem, "z"):
			return stem[:len(stem)-1] + "c", SpellingZC
		}

	case ClassER, ClassIR:
		if first != 'a' && first != 'á' && first != 'o' {
			return stem, SpellingNone
		}
		switch {
		case strings.HasSuffix(stem, "gu"):
			return stem[:len(stem)-1], SpellingGuG
		case strings.HasSuffix(stem, "g"):
			return stem[:len(stem)-1] + "j", SpellingGJ
		case strings.HasSuffix(stem, "c"):
			if endsInVowelBefore(stem, 1) {
				return stem[:len(stem)-1] + "zc", SpellingCZc
			}
			return stem[:len(stem)-1] + "z", SpellingCZ
		}
	}
	return stem, SpellingNone
}

// endsInVowelBefore reports whether the rune preceding the last `trailing`
// bytes of s is a vowel.
func endsInVowelBefore(s string, trailing int) bool {
	if len(s) <= trailing {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:len(s)-trailing])
	return strings.ContainsRune("aeiouáéíóú", r)
}
