package drill

import (
	"context"
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/screen"
	sess "github.com/idelarosa/subjunto/internal/session"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ int) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) VerbAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) CategoryAccuracy(_ context.Context) ([]store.CategoryStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestTier(_ context.Context) (int, error) { return 0, nil }
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ int) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockScheduleRepo implements store.ScheduleRepo for testing.
type mockScheduleRepo struct {
	puts []srs.Schedule
}

func (m *mockScheduleRepo) Get(_ context.Context, _ string) (srs.Schedule, bool, error) {
	return srs.Schedule{}, false, nil
}
func (m *mockScheduleRepo) Put(_ context.Context, schedule srs.Schedule) error {
	m.puts = append(m.puts, schedule)
	return nil
}
func (m *mockScheduleRepo) DueBefore(_ context.Context, _ time.Time) ([]srs.Schedule, error) {
	return nil, nil
}
func (m *mockScheduleRepo) All(_ context.Context) ([]srs.Schedule, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDrillScreen(t *testing.T) (*DrillScreen, *mockEventRepo, *mockScheduleRepo) {
	t.Helper()
	engine := conjugate.NewEngine(verbs.Default())
	orch := exercise.NewOrchestrator(engine, nil, rand.New(rand.NewSource(42)))
	eventRepo := &mockEventRepo{}
	scheduleRepo := &mockScheduleRepo{}

	s := New(orch, coach.New(nil, coach.DefaultConfig()), eventRepo, scheduleRepo, nil)
	return s, eventRepo, scheduleRepo
}

func setupActiveDrill(t *testing.T, s *DrillScreen) {
	t.Helper()
	plan := &sess.Plan{
		Slots: []sess.PlanSlot{
			{Verb: "hablar", Category: sess.CategoryNew},
			{Verb: "ser", Category: sess.CategoryNew},
		},
		Duration: sess.DefaultSessionDuration,
	}
	s.state = sess.NewState(plan, "test-session", 1)

	ex, err := s.orch.Generate(1, adaptive.TriggerNone, []string{"hablar"})
	if err != nil {
		t.Fatalf("generate exercise: %v", err)
	}
	s.state.Current = ex
}

func TestDrillScreen_Title(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	if s.Title() != "Drill" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill")
	}
}

func TestDrillScreen_View_Loading(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestDrillScreen_View_Error(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	s.errMsg = "test error"
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestDrillScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ds := scr.(*DrillScreen)
	if !ds.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ds.Update(keyPress('n'))
	ds = scr.(*DrillScreen)
	if ds.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestDrillScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestDrillScreen_HintKey(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	ds := scr.(*DrillScreen)
	if !ds.state.HintShown {
		t.Error("expected hint to be shown after ctrl+h")
	}
}

func TestDrillScreen_AnswerSubmit(t *testing.T) {
	s, eventRepo, scheduleRepo := testDrillScreen(t)
	setupActiveDrill(t, s)

	// Type the expected form and submit.
	s.input.Model.SetValue(s.state.Current.Result.Primary)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)

	if ds.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback phase after submit")
	}
	if ds.state.LastOutcome == nil || !ds.state.LastOutcome.Correct {
		t.Errorf("outcome = %+v, want correct", ds.state.LastOutcome)
	}
	if ds.state.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", ds.state.TotalCorrect)
	}

	if len(eventRepo.attemptEvents) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(eventRepo.attemptEvents))
	}
	ev := eventRepo.attemptEvents[0]
	if ev.Verb != "hablar" || !ev.Correct || ev.Quality != 5 {
		t.Errorf("attempt event = %+v", ev)
	}

	if len(scheduleRepo.puts) != 1 {
		t.Fatalf("schedule puts = %d, want 1", len(scheduleRepo.puts))
	}
	if scheduleRepo.puts[0].Repetitions != 1 {
		t.Errorf("schedule reps = %d, want 1", scheduleRepo.puts[0].Repetitions)
	}
}

func TestDrillScreen_FeedbackDismiss(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)
	s.state.Phase = sess.PhaseFeedback

	// Press any key to dismiss feedback.
	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected a command after feedback dismiss")
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestDrillScreen_TimerDisplay(t *testing.T) {
	s, _, _ := testDrillScreen(t)
	setupActiveDrill(t, s)

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view with timer")
	}
}
