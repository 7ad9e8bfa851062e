// Package summary implements the post-lesson results screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	sess "github.com/parlolabs/parlo/internal/session"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// SummaryScreen displays the settled results of one lesson attempt.
type SummaryScreen struct {
	lesson  lessongraph.Lesson
	results *sess.Results
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen.
func New(lesson lessongraph.Lesson, results *sess.Results) *SummaryScreen {
	return &SummaryScreen{lesson: lesson, results: results}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.results
	if res == nil {
		return ""
	}

	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(text)))
		b.WriteString("\n")
	}

	title := "Lesson complete!"
	if res.Perfect {
		title = "★ Perfect lesson! ★"
	}
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), title)
	center(theme.Subtitle, s.lesson.Title)
	b.WriteString("\n")

	accuracy := 0.0
	if res.Total > 0 {
		accuracy = float64(res.Correct) / float64(res.Total)
	}
	center(theme.Body, fmt.Sprintf("%d/%d correct  ·  %.0f%% accuracy", res.Correct, res.Total, accuracy*100))
	if res.Expert {
		center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "EXPERT MODE")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", minInt(width-8, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), fmt.Sprintf("+%d XP", res.Outcome.XP))
	center(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), fmt.Sprintf("+%d gems", res.Outcome.Gems))
	if res.Outcome.GCD > 0 {
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), fmt.Sprintf("+%.1f GCD", res.Outcome.GCD))
	}
	center(theme.Body, fmt.Sprintf("🔥 %d day streak", res.Streak))
	b.WriteString("\n")

	if res.UnlockedLesson != nil {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Unlocked: %s", res.UnlockedLesson.Title))
	}
	for _, m := range res.CompletedMissions {
		center(theme.Body, fmt.Sprintf("🎯 %s (+%d gems)", m.Title, m.Reward))
	}
	for _, a := range res.NewAchievements {
		center(lipgloss.NewStyle().Foreground(theme.Accent), "🏆 "+a)
	}

	b.WriteString("\n")
	center(theme.Hint, "Press Enter to continue")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
