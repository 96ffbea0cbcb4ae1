package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/router"
	"github.com/idelarosa/subjunto/internal/screen"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/ui/components"
	"github.com/idelarosa/subjunto/internal/ui/layout"
	"github.com/idelarosa/subjunto/internal/ui/theme"
)

type statsLoadedMsg struct {
	Categories []store.CategoryStats
	Recent     []store.AttemptRecord
	Err        error
}

// StatsScreen displays per-category accuracy and recent attempts.
type StatsScreen struct {
	eventRepo  store.EventRepo
	categories []store.CategoryStats
	recent     []store.AttemptRecord
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		categories, err := s.eventRepo.CategoryAccuracy(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		recent, err := s.eventRepo.RecentAttempts(ctx, 15)
		if err != nil {
			return statsLoadedMsg{Categories: categories}
		}

		return statsLoadedMsg{Categories: categories, Recent: recent}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.categories = msg.Categories
			s.recent = msg.Recent
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

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if len(s.categories) == 0 && len(s.recent) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Start drilling!")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Trigger categories")))
	b.WriteString("\n\n")

	barWidth := min(width-30, 40)
	for _, cs := range s.categories {
		var accuracy float64
		if cs.Total > 0 {
			accuracy = float64(cs.Correct) / float64(cs.Total)
		}
		label := fmt.Sprintf("%-16s", categoryLabel(cs.Category))
		bar := components.NewProgressBar(label, accuracy, true, barWidth+len(label))
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%d/%d)", cs.Correct, cs.Total))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if len(s.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent attempts")))
		b.WriteString("\n\n")

		for _, a := range s.recent {
			mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			if a.Correct {
				mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			}
			line := fmt.Sprintf("%s  %-12s %-14s %s",
				mark, a.Verb, a.TriggerCategory, a.Classification)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// categoryLabel renders the human name for a stored category string.
func categoryLabel(category string) string {
	cat := adaptive.TriggerCategory(category)
	if cat.Valid() {
		return cat.Label()
	}
	return category
}
