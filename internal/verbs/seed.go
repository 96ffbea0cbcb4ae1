package verbs

import "github.com/idelarosa/subjunto/internal/grammar"

// tenseForms builds table entries for one tense in paradigm order
// (yo, tú, él, nosotros, vosotros, ellos). Empty strings are skipped,
// which is how partially irregular verbs list only their odd forms.
func tenseForms(tense grammar.Tense, forms ...string) map[FormKey]string {
	out := make(map[FormKey]string, len(forms))
	for i, f := range forms {
		if f == "" || i >= len(grammar.Persons) {
			continue
		}
		out[FormKey{Tense: tense, Person: grammar.Persons[i]}] = f
	}
	return out
}

// mergeForms combines table fragments for verbs irregular in several tenses.
func mergeForms(tables ...map[FormKey]string) map[FormKey]string {
	out := make(map[FormKey]string)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

// Seed returns the curated high-frequency verb dataset. Frequency ranks
// follow general Spanish corpus order; the spelling-rule verbs near the end
// exist mainly to exercise orthographic adjustments at lower frequency.
func Seed() []Record {
	return []Record{
		{
			Infinitive: "ser", Translation: "to be (essential)", Class: grammar.ClassER,
			Irregular: true, Frequency: 1,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "sea", "seas", "sea", "seamos", "seáis", "sean"),
				tenseForms(grammar.TensePresentIndicative, "soy", "eres", "es", "somos", "sois", "son"),
			),
			ImperfectStem: "fue",
		},
		{
			Infinitive: "estar", Translation: "to be (state)", Class: grammar.ClassAR,
			Irregular: true, Frequency: 2,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "esté", "estés", "esté", "estemos", "estéis", "estén"),
				tenseForms(grammar.TensePresentIndicative, "estoy", "estás", "está", "estamos", "estáis", "están"),
			),
			ImperfectStem: "estuvie",
		},
		{
			Infinitive: "tener", Translation: "to have", Class: grammar.ClassER,
			Irregular: true, StemChange: grammar.StemChangeEIE, Frequency: 3,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "tenga", "tengas", "tenga", "tengamos", "tengáis", "tengan"),
				tenseForms(grammar.TensePresentIndicative, "tengo", "", "", "", "", ""),
			),
			ImperfectStem: "tuvie",
		},
		{
			Infinitive: "hacer", Translation: "to do, to make", Class: grammar.ClassER,
			Irregular: true, Frequency: 4,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "haga", "hagas", "haga", "hagamos", "hagáis", "hagan"),
				tenseForms(grammar.TensePresentIndicative, "hago", "", "", "", "", ""),
			),
			ImperfectStem: "hicie",
			Participle:    "hecho",
		},
		{
			Infinitive: "poder", Translation: "to be able to", Class: grammar.ClassER,
			Irregular: true, StemChange: grammar.StemChangeOUE, Frequency: 5,
			ImperfectStem: "pudie",
		},
		{
			Infinitive: "ir", Translation: "to go", Class: grammar.ClassIR,
			Irregular: true, Frequency: 6,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "vaya", "vayas", "vaya", "vayamos", "vayáis", "vayan"),
				tenseForms(grammar.TensePresentIndicative, "voy", "vas", "va", "vamos", "vais", "van"),
			),
			ImperfectStem: "fue",
		},
		{
			Infinitive: "ver", Translation: "to see", Class: grammar.ClassER,
			Irregular: true, Frequency: 7,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "vea", "veas", "vea", "veamos", "veáis", "vean"),
				tenseForms(grammar.TensePresentIndicative, "veo", "", "", "", "veis", ""),
			),
			Participle: "visto",
		},
		{
			Infinitive: "dar", Translation: "to give", Class: grammar.ClassAR,
			Irregular: true, Frequency: 8,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "dé", "des", "dé", "demos", "deis", "den"),
				tenseForms(grammar.TensePresentIndicative, "doy", "", "", "", "dais", ""),
			),
			ImperfectStem: "die",
		},
		{
			Infinitive: "saber", Translation: "to know (facts)", Class: grammar.ClassER,
			Irregular: true, Frequency: 9,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "sepa", "sepas", "sepa", "sepamos", "sepáis", "sepan"),
				tenseForms(grammar.TensePresentIndicative, "sé", "", "", "", "", ""),
			),
			ImperfectStem: "supie",
		},
		{
			Infinitive: "querer", Translation: "to want, to love", Class: grammar.ClassER,
			Irregular: true, StemChange: grammar.StemChangeEIE, Frequency: 10,
			ImperfectStem: "quisie",
		},
		{
			Infinitive: "decir", Translation: "to say, to tell", Class: grammar.ClassIR,
			Irregular: true, StemChange: grammar.StemChangeEI, Frequency: 11,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "diga", "digas", "diga", "digamos", "digáis", "digan"),
				tenseForms(grammar.TensePresentIndicative, "digo", "", "", "", "", ""),
			),
			ImperfectStem: "dije",
			Participle:    "dicho",
		},
		{
			Infinitive: "venir", Translation: "to come", Class: grammar.ClassIR,
			Irregular: true, StemChange: grammar.StemChangeEIE, Frequency: 12,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "venga", "vengas", "venga", "vengamos", "vengáis", "vengan"),
				tenseForms(grammar.TensePresentIndicative, "vengo", "", "", "", "", ""),
			),
			ImperfectStem: "vinie",
		},
		{
			Infinitive: "hablar", Translation: "to speak", Class: grammar.ClassAR,
			Frequency: 13,
		},
		{
			Infinitive: "pensar", Translation: "to think", Class: grammar.ClassAR,
			StemChange: grammar.StemChangeEIE, Frequency: 14,
		},
		{
			Infinitive: "encontrar", Translation: "to find", Class: grammar.ClassAR,
			StemChange: grammar.StemChangeOUE, Frequency: 15,
		},
		{
			Infinitive: "vivir", Translation: "to live", Class: grammar.ClassIR,
			Frequency: 16,
		},
		{
			Infinitive: "sentir", Translation: "to feel", Class: grammar.ClassIR,
			StemChange: grammar.StemChangeEIE, Frequency: 17,
		},
		{
			Infinitive: "pedir", Translation: "to ask for", Class: grammar.ClassIR,
			StemChange: grammar.StemChangeEI, Frequency: 18,
		},
		{
			Infinitive: "creer", Translation: "to believe", Class: grammar.ClassER,
			Frequency: 19,
		},
		{
			Infinitive: "dormir", Translation: "to sleep", Class: grammar.ClassIR,
			StemChange: grammar.StemChangeOUE, Frequency: 20,
		},
		{
			Infinitive: "comer", Translation: "to eat", Class: grammar.ClassER,
			Frequency: 21,
		},
		{
			Infinitive: "estudiar", Translation: "to study", Class: grammar.ClassAR,
			Frequency: 22,
		},
		{
			Infinitive: "buscar", Translation: "to look for", Class: grammar.ClassAR,
			Frequency: 23,
		},
		{
			Infinitive: "llegar", Translation: "to arrive", Class: grammar.ClassAR,
			Frequency: 24,
		},
		{
			Infinitive: "empezar", Translation: "to begin", Class: grammar.ClassAR,
			StemChange: grammar.StemChangeEIE, Frequency: 25,
		},
		{
			Infinitive: "jugar", Translation: "to play", Class: grammar.ClassAR,
			StemChange: grammar.StemChangeUUE, Frequency: 26,
		},
		{
			Infinitive: "seguir", Translation: "to follow", Class: grammar.ClassIR,
			StemChange: grammar.StemChangeEI, Frequency: 27,
		},
		{
			Infinitive: "haber", Translation: "to have (auxiliary)", Class: grammar.ClassER,
			Irregular: true, Frequency: 28,
			Forms: mergeForms(
				tenseForms(grammar.TensePresentSubjunctive, "haya", "hayas", "haya", "hayamos", "hayáis", "hayan"),
				tenseForms(grammar.TensePresentIndicative, "he", "has", "ha", "hemos", "habéis", "han"),
			),
			ImperfectStem: "hubie",
		},
	}
}
