package conjugate

import (
	"strings"

	"github.com/idelarosa/subjunto/internal/grammar"
)

// Regular person endings indexed in paradigm order
// (yo, tú, él, nosotros, vosotros, ellos).

var presentSubjunctiveEndings = map[grammar.VerbClass][6]string{
	grammar.ClassAR: {"e", "es", "e", "emos", "éis", "en"},
	grammar.ClassER: {"a", "as", "a", "amos", "áis", "an"},
	grammar.ClassIR: {"a", "as", "a", "amos", "áis", "an"},
}

var presentIndicativeEndings = map[grammar.VerbClass][6]string{
	grammar.ClassAR: {"o", "as", "a", "amos", "áis", "an"},
	grammar.ClassER: {"o", "es", "e", "emos", "éis", "en"},
	grammar.ClassIR: {"o", "es", "e", "imos", "ís", "en"},
}

// Imperfect subjunctive endings attach to the imperfect (preterite) stem.
// The nosotros forms accent the stem's final vowel instead of the ending.
var imperfectRAEndings = [6]string{"ra", "ras", "ra", "ramos", "rais", "ran"}
var imperfectSEEndings = [6]string{"se", "ses", "se", "semos", "seis", "sen"}

// Auxiliary haber paradigms for the compound subjunctive tenses.
var hayaForms = [6]string{"haya", "hayas", "haya", "hayamos", "hayáis", "hayan"}
var hubieraForms = [6]string{"hubiera", "hubieras", "hubiera", "hubiéramos", "hubierais", "hubieran"}
var hubieseForms = [6]string{"hubiese", "hubieses", "hubiese", "hubiésemos", "hubieseis", "hubiesen"}

var acuteVowels = map[rune]rune{
	'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'u': 'ú',
}

// accentFinalVowel puts an acute accent on the last vowel of the stem,
// as required by the esdrújula stress of imperfect nosotros forms
// (habláramos, tuviéramos, fuéramos).
func accentFinalVowel(stem string) string {
	runes := []rune(stem)
	for i := len(runes) - 1; i >= 0; i-- {
		if accented, ok := acuteVowels[runes[i]]; ok {
			runes[i] = accented
			return string(runes)
		}
		if strings.ContainsRune("áéíóú", runes[i]) {
			return stem
		}
	}
	return stem
}
