package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/idelarosa/subjunto/internal/ui/theme"
	"github.com/idelarosa/subjunto/internal/validate"
)

// renderExerciseView renders the active drill prompt.
func (s *DrillScreen) renderExerciseView(width, height int) string {
	state := s.state
	if state == nil || state.Current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing exercise...")
	}

	ex := state.Current

	var b strings.Builder

	// Status line: slot progress, score, tier, countdown.
	remaining := state.Plan.Duration - state.Elapsed
	if remaining < 0 {
		remaining = 0
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	timerStr := fmt.Sprintf("%d:%02d", mins, secs)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Verb: %s (%s)", ex.Verb.Infinitive, ex.Verb.Translation))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d  %s %d  tier %d  %s %s",
			state.SlotIndex+1,
			len(state.Plan.Slots),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			state.TotalCorrect,
			state.Tier,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			timerStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// English gloss of the scenario, dimmed.
	if ex.Scenario.English != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(ex.Scenario.English))
		b.WriteString("\n\n")
	}

	// The fill-in-the-blank sentence.
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(ex.Prompt()))
	b.WriteString("\n\n")

	if state.HintShown {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Hint: " + ex.Hint()))
		b.WriteString("\n\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the post-answer feedback view.
func (s *DrillScreen) renderFeedback(width, height int) string {
	state := s.state
	ex := state.Current
	out := state.LastOutcome

	var b strings.Builder
	b.WriteString("\n\n")

	if out != nil && out.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("¡Correcto!"))
	} else {
		headline := "Not quite"
		if out != nil {
			switch out.Classification {
			case validate.MinorTypo:
				headline = "So close — watch the accent"
			case validate.WrongPerson:
				headline = "Right verb, wrong person"
			case validate.WrongTense:
				headline = "Right mood, wrong tense"
			case validate.WrongMood:
				headline = "That's the indicative"
			}
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(headline))
		if ex != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct form: %s", ex.Result.Primary)))
		}
	}

	b.WriteString("\n\n")

	// Coach explanation, once it has arrived.
	if exp := state.LastExplanation; exp != nil {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		text := exp.Summary
		if exp.Detail != "" {
			text += "\n\n" + exp.Detail
		}
		if exp.Tip != "" {
			text += "\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("Tip: "+exp.Tip)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(text)))
		b.WriteString("\n\n")
	} else if s.coach != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Thinking about your answer..."))
		b.WriteString("\n\n")
	}

	// Tier change notification.
	if state.TierChanged > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Level up! Now drilling at tier %d", state.Tier)))
		b.WriteString("\n\n")
	} else if state.TierChanged < 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Easing off — back to tier %d", state.Tier)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Planning your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
