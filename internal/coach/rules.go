package coach

import (
	"fmt"
	"strings"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/validate"
)

// ruleExplanation builds feedback from the validator's classification
// and the engine's explanation tags, with no LLM involved.
func ruleExplanation(req Request) *Explanation {
	res := req.Result
	out := req.Outcome

	exp := &Explanation{Source: "rules", Detail: derivationDetail(res)}

	switch out.Classification {
	case validate.Correct:
		exp.Summary = fmt.Sprintf("¡Correcto! %q is the %s of %s for %s.",
			out.MatchedForm, res.Tense.Label(), res.Verb.Infinitive, res.Person)
		exp.Tip = "Keep the streak going."
	case validate.MinorTypo:
		exp.Summary = fmt.Sprintf("Almost: %q needs its accent, %q.", req.Answer, out.MatchedForm)
		exp.Tip = "Accents change meaning; hable and hablé are different words."
	case validate.WrongPerson:
		exp.Summary = fmt.Sprintf("%q is the %s form; the sentence needs %s.",
			out.MatchedForm, out.ActualPerson, res.Person)
		exp.Tip = "Re-read the subject pronoun before conjugating."
	case validate.WrongTense:
		exp.Summary = fmt.Sprintf("%q is the %s; this sentence calls for the %s.",
			out.MatchedForm, out.ActualTense.Label(), res.Tense.Label())
		exp.Tip = tenseTip(res.Tense)
	case validate.WrongMood:
		exp.Summary = fmt.Sprintf("%q is the indicative; %q triggers the subjunctive.",
			out.MatchedForm, req.TriggerLead)
		exp.Tip = "WEIRDO phrases (wishes, emotions, impersonal expressions, recommendations, doubt, ojalá) take the subjunctive."
	default:
		exp.Summary = fmt.Sprintf("The answer is %q.", res.Primary)
		exp.Tip = "Start from the yo form of the present indicative, drop the -o, add the opposite ending."
	}

	return exp
}

// derivationDetail walks the engine's tags into a rule explanation.
func derivationDetail(res *conjugate.Result) string {
	var parts []string
	for _, tag := range res.Tags {
		switch {
		case tag == conjugate.TagIrregularForm:
			parts = append(parts, fmt.Sprintf("%s is irregular in the %s; %q comes from its conjugation table.",
				res.Verb.Infinitive, res.Tense.Label(), res.Primary))
		case tag == conjugate.TagIrregularStem:
			parts = append(parts, fmt.Sprintf("%s uses the irregular stem %q in the imperfect subjunctive.",
				res.Verb.Infinitive, res.StemUsed))
		case tag == conjugate.TagIrregularParticple:
			parts = append(parts, fmt.Sprintf("%s has the irregular participle %q.",
				res.Verb.Infinitive, res.StemUsed))
		case strings.HasPrefix(tag, conjugate.TagStemChange+":"):
			parts = append(parts, fmt.Sprintf("The stem changes %s in the boot persons.",
				strings.TrimPrefix(tag, conjugate.TagStemChange+":")))
		case tag == conjugate.TagWeakVowelReduction:
			parts = append(parts, "-ir stem-changers keep a reduced vowel change in nosotros and vosotros.")
		case strings.HasPrefix(tag, conjugate.TagSpellingRule+":"):
			parts = append(parts, fmt.Sprintf("Spelling shifts %s to keep the sound of the stem.",
				strings.TrimPrefix(tag, conjugate.TagSpellingRule+":")))
		case tag == conjugate.TagCompound:
			parts = append(parts, fmt.Sprintf("Compound tense: conjugate haber and add the participle, %q.",
				res.Primary))
		case tag == conjugate.TagImperfectVariants:
			parts = append(parts, "Both the -ra and -se endings are correct in the imperfect subjunctive.")
		case tag == conjugate.TagRegular:
			parts = append(parts, fmt.Sprintf("Regular derivation: stem %q plus ending %q.",
				res.StemUsed, res.EndingApplied))
		}
	}
	return strings.Join(parts, " ")
}

func tenseTip(t grammar.Tense) string {
	switch t {
	case grammar.TenseImperfectSubjunctiveRA, grammar.TenseImperfectSubjunctiveSE:
		return "Past triggers (quería que, esperaba que) push the clause into the imperfect subjunctive."
	case grammar.TensePresentPerfectSubjunctive:
		return "Haya + participle talks about what may have already happened."
	case grammar.TensePluperfectSubjunctive:
		return "Hubiera + participle reaches further back than the trigger."
	}
	return "Present triggers take the present subjunctive."
}
