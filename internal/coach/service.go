// Package coach turns validation outcomes and the engine's explanation
// tags into learner-facing feedback. A rule-based explainer always
// works; when an LLM provider is configured its answer replaces the
// rule text, so the app stays fully functional without an API key.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/llm"
	"github.com/idelarosa/subjunto/internal/validate"
)

// Config holds coach configuration.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.4,
	}
}

// Explanation is the feedback shown after an attempt.
type Explanation struct {
	Summary string
	Detail  string
	Tip     string

	// Source is "rules" or "llm".
	Source string
}

// Request carries everything the coach needs about one attempt.
type Request struct {
	Result  *conjugate.Result
	Outcome *validate.Outcome

	// Answer is the learner's raw input.
	Answer string

	// TriggerLead is the scenario clause that framed the blank.
	TriggerLead string
}

// Coach builds explanations. A nil provider means rules only.
type Coach struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Coach over an optional LLM provider.
func New(provider llm.Provider, cfg Config) *Coach {
	return &Coach{provider: provider, cfg: cfg}
}

// Explain produces feedback for one attempt. LLM failures fall back to
// the rule-based explanation rather than erroring; drills never block
// on the network.
func (c *Coach) Explain(ctx context.Context, req Request) *Explanation {
	base := ruleExplanation(req)
	if c.provider == nil {
		return base
	}

	enhanced, err := c.llmExplanation(ctx, req)
	if err != nil {
		return base
	}
	return enhanced
}

// llmOutput is the raw LLM response.
type llmOutput struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
	Tip     string `json:"tip"`
}

func (c *Coach) llmExplanation(ctx context.Context, req Request) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	userMsg, err := buildUserMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build explanation prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM explanation failed: %w", err)
	}

	var raw llmOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	if raw.Summary == "" || raw.Detail == "" {
		return nil, fmt.Errorf("explanation response missing fields")
	}

	return &Explanation{
		Summary: raw.Summary,
		Detail:  raw.Detail,
		Tip:     raw.Tip,
		Source:  "llm",
	}, nil
}
