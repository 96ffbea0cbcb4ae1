package drill

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/router"
	"github.com/idelarosa/subjunto/internal/screen"
	sess "github.com/idelarosa/subjunto/internal/session"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/ui/components"
	"github.com/idelarosa/subjunto/internal/ui/layout"
)

// DrillScreen implements screen.Screen for the active drill session.
type DrillScreen struct {
	state     *sess.State
	orch      *exercise.Orchestrator
	coach     *coach.Coach
	events    store.EventRepo
	schedules store.ScheduleRepo
	planner   sess.Planner
	input     components.TextInput
	errMsg    string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a new DrillScreen with injected dependencies.
func New(orch *exercise.Orchestrator, coachSvc *coach.Coach, events store.EventRepo, schedules store.ScheduleRepo, planner sess.Planner) *DrillScreen {
	return &DrillScreen{
		orch:      orch,
		coach:     coachSvc,
		events:    events,
		schedules: schedules,
		planner:   planner,
		input:     components.NewTextInput("Type the conjugated form...", 30),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initDrill(),
		s.input.Init(),
	)
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderExerciseView(width, height)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillInitMsg:
		return s.handleInit(msg)

	case exerciseReadyMsg:
		return s.handleExerciseReady(msg)

	case explanationMsg:
		if s.state != nil {
			s.state.LastExplanation = msg.Explanation
		}
		return s, nil

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case drillEndMsg:
		return s.handleDrillEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input if active.
	if s.state != nil && s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initDrill builds the plan and picks the starting tier from the last
// ended session.
func (s *DrillScreen) initDrill() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		tier, err := s.events.LatestTier(ctx)
		if err != nil || tier == 0 {
			tier = adaptive.MinTier
		}

		plan, err := s.planner.BuildPlan(time.Now())
		if err != nil {
			return drillInitMsg{Err: err}
		}
		if len(plan.Slots) == 0 {
			return drillInitMsg{Err: errors.New("no verbs available for practice")}
		}

		sessionID := uuid.New().String()
		state := sess.NewState(plan, sessionID, tier)

		var planSummary []store.PlanSlotSummaryData
		for _, slot := range plan.Slots {
			planSummary = append(planSummary, store.PlanSlotSummaryData{
				Verb:     slot.Verb,
				Category: string(slot.Category),
			})
		}
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:   sessionID,
			Action:      "start",
			FinalTier:   tier,
			PlanSummary: planSummary,
		})

		return drillInitMsg{State: state}
	}
}

func (s *DrillScreen) handleInit(msg drillInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, tea.Batch(
		s.serveNext(),
		tickCmd(),
	)
}

// serveNext asks the selector for the next tier and category, then
// generates an exercise for the current plan slot's verb.
func (s *DrillScreen) serveNext() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		slot := state.CurrentSlot()
		if slot == nil {
			return drillEndMsg{}
		}

		sel := adaptive.SelectNext(state.Window, state.Tier)
		if sel.Tier != state.Tier {
			state.TierChanged = sel.Tier - state.Tier
			state.Tier = sel.Tier
		}

		ex, err := s.orch.Generate(state.Tier, sel.PreferredCategory, []string{slot.Verb})
		if err != nil {
			return exerciseReadyMsg{Err: err}
		}
		return exerciseReadyMsg{Exercise: ex}
	}
}

func (s *DrillScreen) handleExerciseReady(msg exerciseReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Skip to the next slot on generation failure.
		if s.state != nil {
			s.state.Advance()
			if s.state.Done() {
				return s, func() tea.Msg { return drillEndMsg{} }
			}
			return s, s.serveNext()
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state.Current = msg.Exercise
	s.input = components.NewTextInput("Type the conjugated form...", 30)
	return s, s.input.Init()
}

func (s *DrillScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}

	s.state.Elapsed = time.Since(s.state.StartTime)

	if s.state.Elapsed >= s.state.Plan.Duration {
		s.state.TimeExpired = true
		// If not mid-answer, end now; otherwise let the learner finish.
		if s.state.Phase == sess.PhaseFeedback || s.state.Current == nil {
			return s, func() tea.Msg { return drillEndMsg{} }
		}
	}

	return s, tickCmd()
}

func (s *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}

	s.state.Phase = sess.PhaseActive
	s.state.Advance()

	if s.state.TimeExpired || s.state.Done() {
		return s, func() tea.Msg { return drillEndMsg{} }
	}

	return s, s.serveNext()
}

func (s *DrillScreen) handleDrillEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.state.Phase = sess.PhaseEnding

	ctx := context.Background()
	_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       s.state.SessionID,
		Action:          "end",
		ExercisesServed: s.state.TotalExercises,
		CorrectAnswers:  s.state.TotalCorrect,
		FinalTier:       s.state.Tier,
		DurationSecs:    int(s.state.Elapsed.Seconds()),
	})

	summary := sess.BuildSummary(s.state)

	// Replace rather than push so dismissing the summary lands on home,
	// not a finished drill.
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: newSummaryScreenAdapter(summary),
		}
	}
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return drillEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback view — any key dismisses.
	if s.state.Phase == sess.PhaseFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	// Active exercise phase.
	if s.state.Phase == sess.PhaseActive {
		switch key {
		case "esc":
			s.state.ShowingQuitConfirm = true
			return s, nil
		case "ctrl+h":
			s.state.HintShown = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer scores the current answer, persists the attempt and the
// updated review schedule, and switches to feedback.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Current == nil {
		return s, nil
	}

	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	ex := s.state.Current
	now := time.Now()
	ctx := context.Background()

	schedule, found, err := s.schedules.Get(ctx, ex.Verb.Infinitive)
	if err != nil || !found {
		schedule = srs.NewSchedule(ex.Verb.Infinitive, now)
	}

	sub := s.orch.Submit(ex, answer, schedule, s.state.HintShown, now)
	_ = s.schedules.Put(ctx, sub.Schedule)

	s.state.RecordAnswer(ex.Verb.Infinitive, sub.Outcome.Correct)
	s.state.Window.Add(adaptive.Observation{
		Correct:  sub.Outcome.Correct,
		Category: ex.Scenario.Category,
	})

	_ = s.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:       s.state.SessionID,
		Verb:            ex.Verb.Infinitive,
		Tense:           string(ex.Tense),
		Person:          ex.Person.String(),
		TriggerCategory: string(ex.Scenario.Category),
		Tier:            ex.Tier,
		Expected:        ex.Result.Primary,
		Answer:          answer,
		Classification:  string(sub.Outcome.Classification),
		Correct:         sub.Outcome.Correct,
		Quality:         sub.Quality,
		Distance:        sub.Outcome.Distance,
		HintUsed:        s.state.HintShown,
	})

	s.input.Submit(sub.Outcome.Correct)
	s.state.LastOutcome = sub.Outcome
	s.state.Phase = sess.PhaseFeedback

	return s, s.explainCmd(ex, answer)
}

// explainCmd asks the coach for feedback asynchronously; the feedback
// view shows the rule-based parts immediately and fills this in when
// it lands.
func (s *DrillScreen) explainCmd(ex *exercise.Exercise, answer string) tea.Cmd {
	if s.coach == nil {
		return nil
	}
	outcome := s.state.LastOutcome
	lead := ex.Scenario.Lead(ex.Tense)
	return func() tea.Msg {
		exp := s.coach.Explain(context.Background(), coach.Request{
			Result:      ex.Result,
			Outcome:     outcome,
			Answer:      answer,
			TriggerLead: lead,
		})
		return explanationMsg{Explanation: exp}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
