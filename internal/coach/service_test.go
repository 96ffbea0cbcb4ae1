package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/grammar"
	"github.com/idelarosa/subjunto/internal/llm"
	"github.com/idelarosa/subjunto/internal/validate"
	"github.com/idelarosa/subjunto/internal/verbs"
)

func conjugateFor(t *testing.T, inf string, tense grammar.Tense, person grammar.Person) *conjugate.Result {
	t.Helper()
	lex, err := verbs.NewLexicon(verbs.Seed())
	if err != nil {
		t.Fatalf("build lexicon: %v", err)
	}
	res, err := conjugate.NewEngine(lex).Conjugate(conjugate.Request{Infinitive: inf, Tense: tense, Person: person})
	if err != nil {
		t.Fatalf("conjugate: %v", err)
	}
	return res
}

func TestExplain_RulesOnlyWithoutProvider(t *testing.T) {
	c := New(nil, DefaultConfig())

	res := conjugateFor(t, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)
	exp := c.Explain(context.Background(), Request{
		Result:      res,
		Outcome:     &validate.Outcome{Classification: validate.WrongMood, MatchedForm: "hablo"},
		Answer:      "hablo",
		TriggerLead: "Espero que",
	})

	if exp.Source != "rules" {
		t.Fatalf("source = %q, want rules", exp.Source)
	}
	if !strings.Contains(exp.Summary, "indicative") {
		t.Errorf("summary %q should name the mood confusion", exp.Summary)
	}
	if !strings.Contains(exp.Summary, "Espero que") {
		t.Errorf("summary %q should quote the trigger", exp.Summary)
	}
}

func TestExplain_RuleDetailFollowsTags(t *testing.T) {
	c := New(nil, DefaultConfig())

	tests := []struct {
		inf    string
		tense  grammar.Tense
		person grammar.Person
		want   string
	}{
		{"buscar", grammar.TensePresentSubjunctive, grammar.PersonYo, "Spelling shifts c→qu"},
		{"querer", grammar.TensePresentSubjunctive, grammar.PersonYo, "stem changes e→ie"},
		{"ser", grammar.TensePresentSubjunctive, grammar.PersonYo, "irregular"},
		{"hablar", grammar.TensePresentPerfectSubjunctive, grammar.PersonYo, "haber"},
		{"hablar", grammar.TenseImperfectSubjunctiveRA, grammar.PersonYo, "-ra and -se"},
	}

	for _, tt := range tests {
		res := conjugateFor(t, tt.inf, tt.tense, tt.person)
		exp := c.Explain(context.Background(), Request{
			Result:  res,
			Outcome: &validate.Outcome{Classification: validate.Unrecognized},
			Answer:  "x",
		})
		if !strings.Contains(exp.Detail, tt.want) {
			t.Errorf("%s %s: detail %q missing %q", tt.inf, tt.tense, exp.Detail, tt.want)
		}
	}
}

func TestExplain_UsesLLMWhenAvailable(t *testing.T) {
	content, _ := json.Marshal(llmOutput{
		Summary: "You used the indicative.",
		Detail:  "Espero que expresses a wish, so the clause takes the subjunctive hable.",
		Tip:     "Wish triggers take subjunctive.",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	c := New(mock, DefaultConfig())

	res := conjugateFor(t, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)
	exp := c.Explain(context.Background(), Request{
		Result:      res,
		Outcome:     &validate.Outcome{Classification: validate.WrongMood, MatchedForm: "hablo"},
		Answer:      "hablo",
		TriggerLead: "Espero que",
	})

	if exp.Source != "llm" {
		t.Fatalf("source = %q, want llm", exp.Source)
	}
	if exp.Summary != "You used the indicative." {
		t.Errorf("summary = %q", exp.Summary)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
	// The prompt must carry the attempt context.
	prompt := mock.Calls[0].Messages[0].Content
	for _, part := range []string{"hablar", "hable", "hablo", "wrong_mood", "Espero que"} {
		if !strings.Contains(prompt, part) {
			t.Errorf("prompt missing %q", part)
		}
	}
}

func TestExplain_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> ErrProviderUnavailable
	c := New(mock, DefaultConfig())

	res := conjugateFor(t, "pedir", grammar.TensePresentSubjunctive, grammar.PersonNosotros)
	exp := c.Explain(context.Background(), Request{
		Result:  res,
		Outcome: &validate.Outcome{Classification: validate.Unrecognized},
		Answer:  "pedamos",
	})

	if exp.Source != "rules" {
		t.Fatalf("source = %q, want rules fallback", exp.Source)
	}
	if !strings.Contains(exp.Summary, "pidamos") {
		t.Errorf("summary %q should give the correct form", exp.Summary)
	}
}

func TestExplain_FallsBackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":""}`)})
	c := New(mock, DefaultConfig())

	res := conjugateFor(t, "hablar", grammar.TensePresentSubjunctive, grammar.PersonYo)
	exp := c.Explain(context.Background(), Request{
		Result:  res,
		Outcome: &validate.Outcome{Classification: validate.Correct, Correct: true, MatchedForm: "hable"},
		Answer:  "hable",
	})

	if exp.Source != "rules" {
		t.Fatalf("source = %q, want rules fallback", exp.Source)
	}
}
