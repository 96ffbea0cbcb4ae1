package coach

import (
	"bytes"
	"strings"
	"text/template"
)

const explanationSystemPrompt = `You are a warm, concise Spanish grammar coach. A learner just answered a subjunctive conjugation drill. Explain the result in plain English with the Spanish forms inline.

Instructions:
- Never invent forms; only use the forms given to you.
- If the answer was correct, reinforce the rule that produced it.
- If it was wrong, name the specific confusion (person, tense, mood, accent) before explaining the rule.
- Keep the summary to one sentence and the detail to at most three.`

var userTemplate = template.Must(template.New("explanation").Parse(`Trigger clause: {{.TriggerLead}}
Verb: {{.Verb}} ({{.Translation}})
Requested: {{.Tense}}, {{.Person}}
Correct form: {{.Expected}}{{if .Alternates}} (also accepted: {{.Alternates}}){{end}}
Learner's answer: {{.Answer}}
Verdict: {{.Classification}}
Rule notes: {{.RuleNotes}}`))

type promptData struct {
	TriggerLead    string
	Verb           string
	Translation    string
	Tense          string
	Person         string
	Expected       string
	Alternates     string
	Answer         string
	Classification string
	RuleNotes      string
}

func buildUserMessage(req Request) (string, error) {
	data := promptData{
		TriggerLead:    req.TriggerLead,
		Verb:           req.Result.Verb.Infinitive,
		Translation:    req.Result.Verb.Translation,
		Tense:          req.Result.Tense.Label(),
		Person:         req.Result.Person.String(),
		Expected:       req.Result.Primary,
		Alternates:     strings.Join(req.Result.Alternates, ", "),
		Answer:         req.Answer,
		Classification: string(req.Outcome.Classification),
		RuleNotes:      derivationDetail(req.Result),
	}

	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
