// Package home implements the main menu screen shown after sign-in.
package home

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	chatscreen "github.com/parlolabs/parlo/internal/screens/chat"
	"github.com/parlolabs/parlo/internal/screens/lessonpath"
	profilescreen "github.com/parlolabs/parlo/internal/screens/profileview"
	shopscreen "github.com/parlolabs/parlo/internal/screens/shop"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	game           *game.State
	welcomeFactory func() screen.Screen
	menu           components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. welcomeFactory builds the screen shown after
// sign-out.
func New(st *game.State, welcomeFactory func() screen.Screen) *HomeScreen {
	h := &HomeScreen{game: st, welcomeFactory: welcomeFactory}

	items := []components.MenuItem{
		{Label: "LESSON PATH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessonpath.New(st)}
			}
		}},
		{Label: "PROFILE & MISSIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(st)}
			}
		}},
		{Label: "SHOP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shopscreen.New(st)}
			}
		}},
	}
	if st.Tutor != nil {
		items = append(items, components.MenuItem{Label: "PRACTICE CHAT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(st)}
			}
		}})
	}
	items = append(items,
		components.MenuItem{Label: "SIGN OUT", Action: h.signOut},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			if err := st.Save(context.Background()); err != nil {
				fmt.Fprintln(os.Stderr, "save on exit:", err)
			}
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) signOut() tea.Cmd {
	if err := h.game.SignOut(context.Background()); err != nil {
		h.game.Notify.Push(notify.KindXP, "Progress not saved", err.Error())
	}
	h.game.Profile = nil
	h.game.Username = ""
	welcome := h.welcomeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: welcome}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "X", Description: "Expert mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "x" {
			h.game.Profile.ExpertMode = !h.game.Profile.ExpertMode
			return h, nil
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.game.Profile
	cw := components.ContentWidth(width)

	variant := MascotIdle
	switch {
	case p.Hearts <= 1:
		variant = MascotAlert
	case p.DailyGoal > 0 && p.DailyXP >= p.DailyGoal:
		variant = MascotCelebrating
	}

	var sections []string

	greeting := fmt.Sprintf("¡Hola, %s!", p.Name)
	if p.Name == "" {
		greeting = "¡Hola!"
	}
	sections = append(sections, theme.Title.Width(cw).Render(greeting))

	if height > 24 {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, RenderMascot(variant)))
	}

	sections = append(sections, h.renderStats(cw))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStats renders the progression summary card.
func (h *HomeScreen) renderStats(cw int) string {
	p := h.game.Profile

	goal := components.NewProgressBar("Daily goal", dailyGoalPercent(p.DailyXP, p.DailyGoal), true, cw-12)

	done := 0
	for _, m := range p.Missions {
		if m.Completed {
			done++
		}
	}

	heartLine := fmt.Sprintf("♥ %d/%d", p.Hearts, profile.MaxHearts)
	if d := hearts.NextRegen(p, time.Now()); d > 0 {
		heartLine += fmt.Sprintf("  (next in %s)", d.Round(time.Minute))
	}

	expert := ""
	if p.ExpertMode {
		expert = "   " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("EXPERT")
	}

	lines := []string{
		fmt.Sprintf("Level %s   🔥 %d day streak   %d XP total%s", p.Level, p.Streak, p.XP, expert),
		heartLine + fmt.Sprintf("   ◆ %d gems   ⬡ %.1f GCD", p.Gems, p.GCDBalance),
		fmt.Sprintf("Missions today: %d/%d", done, len(p.Missions)),
		goal.View(),
	}

	return components.Card(strings.Join(lines, "\n"), cw)
}

func dailyGoalPercent(xp, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	pct := float64(xp) / float64(goal)
	if pct > 1 {
		pct = 1
	}
	return pct
}
