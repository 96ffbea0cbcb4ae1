package agenda

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/idelarosa/subjunto/internal/router"
	"github.com/idelarosa/subjunto/internal/screen"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/ui/layout"
	"github.com/idelarosa/subjunto/internal/ui/theme"
	"github.com/idelarosa/subjunto/internal/verbs"
)

type agendaLoadedMsg struct {
	Schedules []srs.Schedule
	Err       error
}

// AgendaScreen lists every scheduled verb and when it comes up next.
type AgendaScreen struct {
	scheduleRepo store.ScheduleRepo
	lexicon      *verbs.Lexicon
	schedules    []srs.Schedule
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*AgendaScreen)(nil)
var _ screen.KeyHintProvider = (*AgendaScreen)(nil)

// New creates a new AgendaScreen.
func New(scheduleRepo store.ScheduleRepo, lexicon *verbs.Lexicon) *AgendaScreen {
	return &AgendaScreen{
		scheduleRepo: scheduleRepo,
		lexicon:      lexicon,
	}
}

func (s *AgendaScreen) Init() tea.Cmd {
	return func() tea.Msg {
		schedules, err := s.scheduleRepo.All(context.Background())
		if err != nil {
			return agendaLoadedMsg{Err: err}
		}
		return agendaLoadedMsg{Schedules: schedules}
	}
}

func (s *AgendaScreen) Title() string {
	return "Review Agenda"
}

func (s *AgendaScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AgendaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.schedules = msg.Schedules
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AgendaScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading agenda...")
	}
	if len(s.schedules) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing scheduled yet. Drill some verbs first!")
	}

	now := time.Now()

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-14s %-22s %6s %10s   %s", "Verb", "Translation", "Reps", "Interval", "Next review")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n\n")

	for _, sched := range s.schedules {
		translation := ""
		if s.lexicon != nil {
			if rec, ok := s.lexicon.Lookup(sched.Verb); ok {
				translation = rec.Translation
			}
		}

		var when string
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sched.Due(now) {
			overdue := sched.OverdueDays(now)
			if overdue > 0 {
				when = fmt.Sprintf("due (%dd overdue)", overdue)
			} else {
				when = "due now"
			}
			style = style.Foreground(theme.Accent).Bold(true)
		} else {
			when = sched.NextReview.Format("Jan 02")
		}

		line := fmt.Sprintf("  %-14s %-22s %6d %9dd   %s",
			sched.Verb, translation, sched.Repetitions, sched.IntervalDays, when)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
