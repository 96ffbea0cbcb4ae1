package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/idelarosa/subjunto/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Duration:       8 * time.Minute,
		TotalExercises: 10,
		TotalCorrect:   7,
		Accuracy:       0.7,
		FinalTier:      3,
		VerbResults: []session.VerbResult{
			{
				Verb:      "hablar",
				Category:  session.CategoryReview,
				Attempted: 4,
				Correct:   4,
			},
			{
				Verb:      "dormir",
				Category:  session.CategoryNew,
				Attempted: 3,
				Correct:   1,
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
