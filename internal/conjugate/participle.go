package conjugate

import (
	"strings"

	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// participle returns the past participle for compound tenses and whether
// it came from an irregular override.
func participle(rec *verbs.Record) (string, bool, error) {
	if rec.Participle != "" {
		return rec.Participle, true, nil
	}

	stem, err := grammar.Stem(rec.Infinitive, rec.Class)
	if err != nil {
		return "", false, err
	}

	if rec.Class == grammar.ClassAR {
		return stem + "ado", false, nil
	}

	// -er/-ir stems ending in a strong vowel take an accented -ído
	// (creer → creído, leer → leído) to break the diphthong.
	if endsInStrongVowel(stem) {
		return stem + "ído", false, nil
	}
	return stem + "ido", false, nil
}

func endsInStrongVowel(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return strings.ContainsRune("aeo", runes[len(runes)-1])
}
