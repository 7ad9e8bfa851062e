package lesson

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/exercise"
	sess "github.com/parlolabs/parlo/internal/session"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	st := s.game.Session
	switch st.Phase {
	case sess.PhaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your lesson...")
	case sess.PhaseInProgress:
		if st.ShowingFeedback {
			return s.renderFeedback(width)
		}
		return s.renderExercise(width)
	default:
		return ""
	}
}

func (s *LessonScreen) renderExercise(width int) string {
	st := s.game.Session
	cur := st.Current()
	if cur == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", kindLabel(cur.Kind)))

	right := fmt.Sprintf("%d/%d  ✓ %d", st.Index+1, len(st.Exercises), st.Correct)
	if st.Expert {
		remaining := st.Remaining(time.Now())
		secs := int(remaining.Seconds())
		timer := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		if remaining < 6*time.Second {
			timer = timer.Foreground(theme.Error)
		}
		right += "  " + timer.Render(fmt.Sprintf("⏱ %ds", secs))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Question))
	b.WriteString("\n\n")

	switch cur.Kind {
	case exercise.MultipleChoice:
		b.WriteString(s.renderChoices(width, cur))
	case exercise.Listening:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Spanish.Render("🔊 " + cur.SpokenText())))
		b.WriteString("\n\n")
		b.WriteString(s.renderInputLine(width))
	case exercise.Speaking:
		b.WriteString(s.renderSpeaking(width, cur))
	default:
		b.WriteString(s.renderInputLine(width))
	}

	return b.String()
}

func (s *LessonScreen) renderInputLine(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
}

func (s *LessonScreen) renderChoices(width int, cur *exercise.Exercise) string {
	bw := width - 12
	if bw > 44 {
		bw = 44
	}
	if bw < 20 {
		bw = 20
	}
	var b strings.Builder
	for i, opt := range cur.Options {
		b.WriteString(components.BigButton(fmt.Sprintf("%d) %s", i+1, opt), i == s.mcSelected, bw))
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render("\nSelect (1-4) or use arrows + Enter"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LessonScreen) renderSpeaking(width int, cur *exercise.Exercise) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Spanish.Render("“" + cur.SpokenText() + "”")))
	b.WriteString("\n\n")

	status := "Press Enter to record"
	style := theme.Hint
	switch {
	case s.recording:
		status = "● Recording... speak now"
		style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case s.game.Session.Analyzing:
		status = "Analyzing your pronunciation..."
		style = lipgloss.NewStyle().Foreground(theme.Secondary)
	case s.game.Recorder == nil || s.game.Analyzer == nil:
		status = "No microphone support — press Enter to skip"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(status)))
	return b.String()
}

func (s *LessonScreen) renderFeedback(width int) string {
	st := s.game.Session
	cur := st.Current()

	var b strings.Builder
	b.WriteString("\n\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(text)))
		b.WriteString("\n")
	}

	if st.LastAnswerCorrect {
		centered(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "¡Correcto!")
	} else {
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		if cur != nil {
			centered(theme.Hint, fmt.Sprintf("Correct answer: %s", cur.CorrectAnswer))
		}
	}
	b.WriteString("\n")

	if fb := s.lastFeedback; fb != nil {
		centered(theme.Body, fmt.Sprintf("Pronunciation score: %d/100", fb.Score))
		if fb.Summary != "" {
			centered(theme.Hint, fb.Summary)
		}
		if len(fb.ProblemWords) > 0 {
			centered(theme.Hint, "Work on: "+strings.Join(fb.ProblemWords, ", "))
		}
		b.WriteString("\n")
	}

	if cur != nil && cur.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(cur.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if s.phraseSaved {
		centered(lipgloss.NewStyle().Foreground(theme.Accent), "★ Saved to phrasebook")
	} else if cur != nil && cur.CorrectAnswer != "" {
		centered(theme.Hint, "Press S to save this phrase")
	}
	b.WriteString("\n")
	centered(theme.Hint, "Press any key to continue...")

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Quit this lesson?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Progress in this lesson will be lost. Hearts stay spent."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func kindLabel(k exercise.Kind) string {
	switch k {
	case exercise.Translate:
		return "Translate"
	case exercise.MultipleChoice:
		return "Multiple choice"
	case exercise.Speaking:
		return "Speaking"
	case exercise.Listening:
		return "Listening"
	case exercise.Roleplay:
		return "Roleplay"
	default:
		return string(k)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
