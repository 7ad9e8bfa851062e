// Package profileview implements the learner profile screen: stats, daily
// missions, achievements, activity history, and the phrasebook.
package profileview

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

type tab int

const (
	tabStats tab = iota
	tabMissions
	tabAchievements
	tabActivity
	tabPhrasebook
	tabCount
)

var tabNames = [tabCount]string{"Stats", "Missions", "Achievements", "Activity", "Phrasebook"}

// ProfileScreen shows the learner's progression in tabbed sections.
type ProfileScreen struct {
	game   *game.State
	active tab
	scroll int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(st *game.State) *ProfileScreen {
	return &ProfileScreen{game: st}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Switch tab"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.active = (s.active + tabCount - 1) % tabCount
		s.scroll = 0
	case "right", "l", "tab":
		s.active = (s.active + 1) % tabCount
		s.scroll = 0
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	var body string
	switch s.active {
	case tabStats:
		body = s.renderStats()
	case tabMissions:
		body = s.renderMissions(width)
	case tabAchievements:
		body = s.renderAchievements()
	case tabActivity:
		body = s.renderActivity()
	case tabPhrasebook:
		body = s.renderPhrasebook(height - 6)
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	return b.String()
}

func (s *ProfileScreen) renderTabs() string {
	var parts []string
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if tab(i) == s.active {
			style = style.Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
		}
		parts = append(parts, style.Render(name))
	}
	return strings.Join(parts, " ")
}

func (s *ProfileScreen) renderStats() string {
	p := s.game.Profile

	rows := [][2]string{
		{"Name", p.Name},
		{"Level", string(p.Level)},
		{"Native language", profile.LanguageName(p.NativeLanguage)},
		{"Total XP", fmt.Sprintf("%d", p.XP)},
		{"Streak", fmt.Sprintf("%d days (%d freezes)", p.Streak, p.StreakFreezes)},
		{"Hearts", fmt.Sprintf("%d/%d", p.Hearts, profile.MaxHearts)},
		{"Gems", fmt.Sprintf("%d", p.Gems)},
		{"GCD balance", fmt.Sprintf("%.1f", p.GCDBalance)},
		{"Lessons completed", fmt.Sprintf("%d", len(p.CompletedLessons))},
		{"Outfit", p.CurrentOutfit},
	}
	if p.Goal != "" {
		rows = append(rows, [2]string{"Learning goal", string(p.Goal)})
	}
	if p.ExpertMode {
		rows = append(rows, [2]string{"Expert mode", "on"})
	}
	if p.WalletAddress != "" {
		rows = append(rows, [2]string{"Wallet", p.WalletAddress})
	}

	var b strings.Builder
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	for _, r := range rows {
		b.WriteString(label.Render(r[0]) + theme.Body.Render(r[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ProfileScreen) renderMissions(width int) string {
	p := s.game.Profile
	if len(p.Missions) == 0 {
		return theme.Hint.Render("No missions today. Come back tomorrow!")
	}

	barWidth := minInt(width-30, 30)
	var b strings.Builder
	for _, m := range p.Missions {
		check := "○"
		titleStyle := theme.Body
		if m.Completed {
			check = "●"
			titleStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", check, m.Title)))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  +%d gems", m.Reward)))
		b.WriteString("\n")

		pct := float64(m.Current) / float64(m.Target)
		bar := components.NewProgressBar(fmt.Sprintf("%d/%d", m.Current, m.Target), pct, false, barWidth)
		b.WriteString("  " + bar.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

func (s *ProfileScreen) renderAchievements() string {
	p := s.game.Profile
	var b strings.Builder
	for _, a := range p.Achievements {
		if a.IsUnlocked {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
				fmt.Sprintf("%s %s", a.Icon, a.Title)))
			b.WriteString("  " + theme.Hint.Render(a.Description))
		} else {
			b.WriteString(theme.Locked.Render(fmt.Sprintf("🔒 %s", a.Title)))
			b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("%s (%d/%d)", a.Description, a.Progress, a.Target)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderActivity draws the last week of XP as a simple bar chart.
func (s *ProfileScreen) renderActivity() string {
	p := s.game.Profile

	byDate := make(map[string]int, len(p.ActivityHistory))
	maxXP := 1
	for _, d := range p.ActivityHistory {
		byDate[d.Date] = d.XP
		if d.XP > maxXP {
			maxXP = d.XP
		}
	}

	const barMax = 24
	var b strings.Builder
	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := profile.DateKey(day)
		xp := byDate[key]

		n := xp * barMax / maxXP
		bar := strings.Repeat("█", n)
		if xp > 0 && n == 0 {
			bar = "▏"
		}

		b.WriteString(theme.Hint.Render(day.Format("Mon ")))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("%-24s", bar)))
		b.WriteString(theme.Body.Render(fmt.Sprintf(" %d XP", xp)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ProfileScreen) renderPhrasebook(visible int) string {
	p := s.game.Profile
	if len(p.SavedPhrases) == 0 {
		return theme.Hint.Render("No saved phrases yet.\nPress S during lesson feedback to save one.")
	}
	if visible < 3 {
		visible = 3
	}

	maxScroll := len(p.SavedPhrases) - visible/2
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	var b strings.Builder
	shown := 0
	for i := s.scroll; i < len(p.SavedPhrases) && shown*2 < visible; i++ {
		ph := p.SavedPhrases[i]
		b.WriteString(theme.Spanish.Render(ph.Original))
		b.WriteString("\n")
		b.WriteString("  " + theme.Hint.Render(ph.Translation))
		b.WriteString("\n")
		shown++
	}
	if s.scroll+shown < len(p.SavedPhrases) {
		b.WriteString(theme.Hint.Render("..."))
	}
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
