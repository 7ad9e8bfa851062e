// Package welcome implements the sign-in, registration, and first-run
// onboarding flow shown before the home screen.
package welcome

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

type step int

const (
	stepAuth step = iota
	stepName
	stepLanguage
	stepLevel
	stepDailyGoal
	stepPurpose
)

type mode int

const (
	modeSignIn mode = iota
	modeRegister
)

// authDoneMsg reports the account registration or credential check.
type authDoneMsg struct {
	username string
	err      error
}

// signedInMsg reports profile load and day-start preparation.
type signedInMsg struct {
	err error
}

// savedMsg reports the onboarding save before the home transition.
type savedMsg struct {
	err error
}

type goalChoice struct {
	XP    int
	Label string
}

var dailyGoals = []goalChoice{
	{20, "Casual"},
	{50, "Regular"},
	{100, "Serious"},
	{150, "Intense"},
}

var purposes = []struct {
	Goal  profile.Goal
	Label string
}{
	{profile.GoalTravel, "Travel"},
	{profile.GoalWork, "Work"},
	{profile.GoalExams, "Exams"},
	{profile.GoalConversation, "Conversation"},
	{profile.GoalPersonal, "Personal growth"},
}

// WelcomeScreen drives sign-in/registration and, for fresh profiles, the
// onboarding questions that seed the learner profile.
type WelcomeScreen struct {
	game        *game.State
	homeFactory func() screen.Screen

	step step
	mode mode

	username components.TextInput
	password components.TextInput
	name     components.TextInput
	focus    int // 0 username, 1 password

	cursor int // selection index for the list steps
	busy   bool
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen. homeFactory builds the screen shown after
// a completed sign-in.
func New(st *game.State, homeFactory func() screen.Screen) *WelcomeScreen {
	pw := components.NewTextInput("password", false, 40)
	pw.Model.EchoMode = textinput.EchoPassword
	return &WelcomeScreen{
		game:        st,
		homeFactory: homeFactory,
		username:    components.NewTextInput("username", false, 24),
		password:    pw,
		name:        components.NewTextInput("What should we call you?", false, 24),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.username.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepAuth {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Sign in / Register"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Continue"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		w.busy = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.busy = true
		return w, w.signIn(msg.username)

	case signedInMsg:
		w.busy = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		if w.game.Profile.Name == "" {
			w.step = stepName
			return w, w.name.Init()
		}
		return w, w.toHome()

	case savedMsg:
		w.busy = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		return w, w.toHome()

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	return w.forwardToInput(msg)
}

func (w *WelcomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if w.busy {
		return w, nil
	}
	key := msg.String()

	switch w.step {
	case stepAuth:
		switch key {
		case "tab":
			if w.mode == modeSignIn {
				w.mode = modeRegister
			} else {
				w.mode = modeSignIn
			}
			w.errMsg = ""
			return w, nil
		case "up", "down":
			w.focus = 1 - w.focus
			return w, nil
		case "enter":
			if w.focus == 0 {
				w.focus = 1
				return w, nil
			}
			return w.submitAuth()
		}
		return w.forwardToInput(msg)

	case stepName:
		if key == "enter" {
			if strings.TrimSpace(w.name.Value()) == "" {
				w.errMsg = "Please enter a name."
				return w, nil
			}
			w.errMsg = ""
			w.step = stepLanguage
			w.cursor = 0
			return w, nil
		}
		return w.forwardToInput(msg)

	default:
		return w.handleListKey(key)
	}
}

func (w *WelcomeScreen) handleListKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < w.listLen()-1 {
			w.cursor++
		}
	case "enter":
		return w.selectListItem()
	}
	return w, nil
}

func (w *WelcomeScreen) listLen() int {
	switch w.step {
	case stepLanguage:
		return len(profile.SupportedLanguages)
	case stepLevel:
		return len(profile.AllLevels())
	case stepDailyGoal:
		return len(dailyGoals)
	case stepPurpose:
		return len(purposes)
	}
	return 0
}

func (w *WelcomeScreen) selectListItem() (screen.Screen, tea.Cmd) {
	p := w.game.Profile
	switch w.step {
	case stepLanguage:
		p.NativeLanguage = profile.SupportedLanguages[w.cursor]
		w.step = stepLevel
	case stepLevel:
		p.Level = profile.AllLevels()[w.cursor]
		w.step = stepDailyGoal
	case stepDailyGoal:
		p.DailyGoal = dailyGoals[w.cursor].XP
		w.step = stepPurpose
	case stepPurpose:
		p.Goal = purposes[w.cursor].Goal
		p.Name = strings.TrimSpace(w.name.Value())
		w.busy = true
		return w, w.save()
	}
	w.cursor = 0
	return w, nil
}

func (w *WelcomeScreen) submitAuth() (screen.Screen, tea.Cmd) {
	username := strings.TrimSpace(w.username.Value())
	password := w.password.Value()
	if username == "" || password == "" {
		w.errMsg = "Username and password are required."
		return w, nil
	}

	w.errMsg = ""
	w.busy = true
	register := w.mode == modeRegister
	accounts := w.game.Accounts
	return w, func() tea.Msg {
		ctx := context.Background()
		var err error
		if register {
			err = accounts.Register(ctx, username, password)
		} else {
			err = accounts.Authenticate(ctx, username, password)
		}
		return authDoneMsg{username: username, err: err}
	}
}

func (w *WelcomeScreen) signIn(username string) tea.Cmd {
	st := w.game
	return func() tea.Msg {
		return signedInMsg{err: game.SignIn(context.Background(), st, username, time.Now())}
	}
}

func (w *WelcomeScreen) save() tea.Cmd {
	st := w.game
	return func() tea.Msg {
		return savedMsg{err: st.Save(context.Background())}
	}
}

func (w *WelcomeScreen) toHome() tea.Cmd {
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case w.step == stepName:
		w.name, cmd = w.name.Update(msg)
	case w.focus == 0:
		w.username, cmd = w.username.Update(msg)
	default:
		w.password, cmd = w.password.Update(msg)
	}
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, RenderBanner(width))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Learn Spanish, one lesson at a time"))
	sections = append(sections, "")

	switch w.step {
	case stepAuth:
		sections = append(sections, w.viewAuth())
	case stepName:
		sections = append(sections, w.viewPrompt("And your name?", "  "+w.name.View()))
	case stepLanguage:
		sections = append(sections, w.viewList("What language do you speak?", w.languageLabels()))
	case stepLevel:
		sections = append(sections, w.viewList("How much Spanish do you know?", w.levelLabels()))
	case stepDailyGoal:
		sections = append(sections, w.viewList("Pick a daily XP goal", w.goalLabels()))
	case stepPurpose:
		sections = append(sections, w.viewList("Why are you learning?", w.purposeLabels()))
	}

	if w.busy {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).Render("Working..."))
	}
	if w.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewAuth() string {
	var b strings.Builder

	tabs := []string{"Sign in", "Create account"}
	var rendered []string
	for i, t := range tabs {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2)
		if mode(i) == w.mode {
			style = style.Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
		}
		rendered = append(rendered, style.Render(t))
	}
	b.WriteString(strings.Join(rendered, " "))
	b.WriteString("\n\n")

	label := func(s string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = style.Foreground(theme.Secondary).Bold(true)
		}
		return style.Render(s)
	}
	b.WriteString(label("Username  ", w.focus == 0) + w.username.View())
	b.WriteString("\n")
	b.WriteString(label("Password  ", w.focus == 1) + w.password.View())

	return b.String()
}

func (w *WelcomeScreen) viewPrompt(title, body string) string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title) +
		"\n\n" + body
}

// viewList renders a selection list with a scrolling window so the long
// language list stays on screen.
func (w *WelcomeScreen) viewList(title string, labels []string) string {
	const window = 8

	start := 0
	if w.cursor >= window {
		start = w.cursor - window + 1
	}
	end := start + window
	if end > len(labels) {
		end = len(labels)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title))
	b.WriteString("\n\n")
	for i := start; i < end; i++ {
		if i == w.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + labels[i]))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + labels[i]))
		}
		b.WriteString("\n")
	}
	if end < len(labels) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ..."))
	}
	return b.String()
}

func (w *WelcomeScreen) languageLabels() []string {
	out := make([]string, len(profile.SupportedLanguages))
	for i, code := range profile.SupportedLanguages {
		out[i] = profile.LanguageName(code)
	}
	return out
}

func (w *WelcomeScreen) levelLabels() []string {
	descriptions := map[profile.CEFRLevel]string{
		profile.LevelA1: "I'm just starting",
		profile.LevelA2: "I know the basics",
		profile.LevelB1: "I can hold simple conversations",
		profile.LevelB2: "I'm comfortable in most situations",
		profile.LevelC1: "I'm fluent in most contexts",
		profile.LevelC2: "I'm near-native",
	}
	levels := profile.AllLevels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = fmt.Sprintf("%s — %s", l, descriptions[l])
	}
	return out
}

func (w *WelcomeScreen) goalLabels() []string {
	out := make([]string, len(dailyGoals))
	for i, g := range dailyGoals {
		out[i] = fmt.Sprintf("%s — %d XP/day", g.Label, g.XP)
	}
	return out
}

func (w *WelcomeScreen) purposeLabels() []string {
	out := make([]string, len(purposes))
	for i, p := range purposes {
		out[i] = p.Label
	}
	return out
}
