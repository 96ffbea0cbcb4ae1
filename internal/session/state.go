package session

import (
	"time"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/validate"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Serving exercises
	PhaseFeedback              // Showing answer feedback
	PhaseEnding                // Session time expired or quit confirmed
	PhaseSummary               // Showing summary screen
)

// State tracks the runtime state of an active drill session.
type State struct {
	// Plan is the session plan built at start.
	Plan *Plan

	// SlotIndex is the index into Plan.Slots for the current verb.
	SlotIndex int

	// Current is the active exercise being displayed (nil between exercises).
	Current *exercise.Exercise

	// Window holds the recent-accuracy observations for the adaptive selector.
	Window *adaptive.Window

	// Tier is the learner's current difficulty tier.
	Tier int

	// TotalExercises is the count of exercises served so far.
	TotalExercises int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// PerVerbResults tracks per-verb stats for the summary screen.
	PerVerbResults map[string]*VerbResult

	// SessionID is the UUID for this session.
	SessionID string

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// Phase is the current session phase.
	Phase Phase

	// HintShown is true if the hint was shown for the current exercise.
	HintShown bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// TimeExpired indicates the session timer has run out.
	TimeExpired bool

	// LastOutcome is the validator outcome for the most recent answer.
	LastOutcome *validate.Outcome

	// LastExplanation is the coach's feedback for the most recent answer.
	LastExplanation *coach.Explanation

	// TierChanged is set when the adaptive selector moved the tier,
	// for feedback display. Positive means up, negative means down.
	TierChanged int
}

// VerbResult tracks per-verb performance within a single session.
type VerbResult struct {
	Verb      string
	Category  PlanCategory
	Attempted int
	Correct   int
}

// NewState creates a new session state with initialized maps.
func NewState(plan *Plan, sessionID string, startTier int) *State {
	perVerb := make(map[string]*VerbResult)
	for _, slot := range plan.Slots {
		if _, exists := perVerb[slot.Verb]; !exists {
			perVerb[slot.Verb] = &VerbResult{
				Verb:     slot.Verb,
				Category: slot.Category,
			}
		}
	}

	tier := startTier
	if tier < adaptive.MinTier {
		tier = adaptive.MinTier
	}
	if tier > adaptive.MaxTier {
		tier = adaptive.MaxTier
	}

	return &State{
		Plan:           plan,
		SessionID:      sessionID,
		Tier:           tier,
		Window:         adaptive.NewWindow(adaptive.DefaultWindowSize),
		PerVerbResults: perVerb,
		StartTime:      time.Now(),
		Phase:          PhaseActive,
	}
}

// CurrentSlot returns the plan slot the session is on, or nil when the
// plan is exhausted.
func (s *State) CurrentSlot() *PlanSlot {
	if s.Plan == nil || s.SlotIndex >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.SlotIndex]
}

// RecordAnswer updates the session tallies for an answered exercise.
func (s *State) RecordAnswer(verb string, correct bool) {
	s.TotalExercises++
	if correct {
		s.TotalCorrect++
	}
	vr := s.PerVerbResults[verb]
	if vr == nil {
		vr = &VerbResult{Verb: verb, Category: CategoryNew}
		s.PerVerbResults[verb] = vr
	}
	vr.Attempted++
	if correct {
		vr.Correct++
	}
}

// Advance moves to the next plan slot and clears per-exercise state.
func (s *State) Advance() {
	s.SlotIndex++
	s.Current = nil
	s.HintShown = false
	s.LastOutcome = nil
	s.LastExplanation = nil
	s.TierChanged = 0
}

// Done reports whether every plan slot has been served.
func (s *State) Done() bool {
	return s.Plan == nil || s.SlotIndex >= len(s.Plan.Slots)
}
