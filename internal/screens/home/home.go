package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/router"
	"github.com/idelarosa/subjunto/internal/screen"
	"github.com/idelarosa/subjunto/internal/screens/agenda"
	"github.com/idelarosa/subjunto/internal/screens/drill"
	"github.com/idelarosa/subjunto/internal/screens/placeholder"
	"github.com/idelarosa/subjunto/internal/screens/stats"
	sess "github.com/idelarosa/subjunto/internal/session"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/ui/components"
	"github.com/idelarosa/subjunto/internal/ui/theme"
	"github.com/idelarosa/subjunto/internal/verbs"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	reviewsDue int
	tier       int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(orch *exercise.Orchestrator, coachSvc *coach.Coach, events store.EventRepo, schedules store.ScheduleRepo, planner sess.Planner, lexicon *verbs.Lexicon) *HomeScreen {
	ctx := context.Background()

	var reviewsDue int
	if schedules != nil {
		if due, err := schedules.DueBefore(ctx, time.Now()); err == nil {
			reviewsDue = len(due)
		}
	}

	tier := 1
	if events != nil {
		if t, err := events.LatestTier(ctx); err == nil && t > 0 {
			tier = t
		}
	}

	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			if orch == nil || events == nil || schedules == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Drill")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.New(orch, coachSvc, events, schedules, planner),
				}
			}
		}},
		{Label: "REVIEW AGENDA", Action: func() tea.Cmd {
			if schedules == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Review Agenda")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: agenda.New(schedules, lexicon)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			if events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Stats")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		reviewsDue: reviewsDue,
		tier:       tier,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("S U B J U N T O"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("El subjuntivo, un verbo a la vez"))
	b.WriteString("\n\n")

	statsLine := renderStatsLine(h.tier, h.reviewsDue)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsLine renders the tier and due-review counters.
func renderStatsLine(tier, reviewsDue int) string {
	tierStr := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("Tier %d", tier))

	dueStr := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(dueLabel(reviewsDue))

	return tierStr + lipgloss.NewStyle().Foreground(theme.TextDim).Render("    ·    ") + dueStr
}

func dueLabel(n int) string {
	switch n {
	case 0:
		return "No reviews due"
	case 1:
		return "1 review due"
	default:
		return fmt.Sprintf("%d reviews due", n)
	}
}
