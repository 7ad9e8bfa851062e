package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/screens/home"
	"github.com/parlolabs/parlo/internal/screens/welcome"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
)

// regenInterval is how often the app checks for off-screen heart regen.
const regenInterval = 15 * time.Second

// regenTickMsg drives the background heart-regeneration check.
type regenTickMsg time.Time

// toastExpireMsg dismisses one notification after its TTL elapses.
type toastExpireMsg struct{ id string }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	game   *game.State
	router *router.Router
	width  int
	height int

	// toastTimers tracks notifications whose expiry is already scheduled.
	toastTimers map[string]bool
}

// Options configures the root model.
type Options struct {
	Game *game.State

	// SignedIn skips the welcome screen when the active account was
	// restored at startup.
	SignedIn bool
}

func newAppModel(opts Options) AppModel {
	// The welcome and home screens replace each other on sign-in/sign-out,
	// so both factories are built here and close over one another.
	var welcomeFn, homeFn func() screen.Screen
	welcomeFn = func() screen.Screen { return welcome.New(opts.Game, homeFn) }
	homeFn = func() screen.Screen { return home.New(opts.Game, welcomeFn) }

	var initial screen.Screen
	if opts.SignedIn {
		initial = homeFn()
	} else {
		initial = welcomeFn()
	}
	return AppModel{
		game:        opts.Game,
		router:      router.New(initial),
		toastTimers: make(map[string]bool),
	}
}

func (m AppModel) Init() tea.Cmd {
	return regenTick()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case regenTickMsg:
		if p := m.game.Profile; p != nil {
			if gained := hearts.CatchUp(p, time.Now()); gained > 0 {
				m.game.Notify.Push(notify.KindStreak, "Hearts restored",
					fmt.Sprintf("You regained %d heart(s).", gained))
			}
		}
		return m, tea.Batch(regenTick(), m.scheduleToasts())

	case toastExpireMsg:
		m.game.Notify.Dismiss(msg.id)
		delete(m.toastTimers, msg.id)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.game.Profile != nil {
				if err := m.game.Save(context.Background()); err != nil {
					fmt.Fprintln(os.Stderr, "save on exit:", err)
				}
			}
			return m, tea.Quit
		case "esc":
			if active, ok := m.router.Active().(screen.EscapeHandler); ok && active.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.scheduleToasts())
}

// scheduleToasts arms a TTL timer for every notification that does not have
// one yet. Screens push notifications synchronously; the expiry lives here.
func (m AppModel) scheduleToasts() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.game.Notify.Active() {
		if m.toastTimers[n.ID] {
			continue
		}
		m.toastTimers[n.ID] = true
		id := n.ID
		cmds = append(cmds, tea.Tick(notify.TTL, func(time.Time) tea.Msg {
			return toastExpireMsg{id: id}
		}))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight

	// Toasts claim rows from the top of the content area.
	toasts := components.RenderToasts(m.game.Notify.Active(), m.width)
	if toasts != "" {
		toasts = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toasts)
		contentHeight -= lipgloss.Height(toasts)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if toasts != "" {
		content = toasts + "\n" + content
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// headerStats snapshots the profile counters for the status strip. Zeroes
// before sign-in.
func (m AppModel) headerStats() layout.HeaderStats {
	p := m.game.Profile
	if p == nil {
		return layout.HeaderStats{}
	}
	return layout.HeaderStats{
		Hearts:  p.Hearts,
		Gems:    p.Gems,
		Streak:  p.Streak,
		DailyXP: p.DailyXP,
		Goal:    p.DailyGoal,
	}
}

func regenTick() tea.Cmd {
	return tea.Tick(regenInterval, func(t time.Time) tea.Msg {
		return regenTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
