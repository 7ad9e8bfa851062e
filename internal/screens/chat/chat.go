// Package chat implements the free-form conversation practice screen.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatsvc "github.com/parlolabs/parlo/internal/chat"
	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// replyMsg carries the tutor's answer, or the failure, back to the screen.
type replyMsg struct {
	text string
	err  error
}

// ChatScreen holds one conversation with the tutor. The transcript lives
// only for the screen's lifetime; closing the screen ends the chat.
type ChatScreen struct {
	game   *game.State
	turns  []chatsvc.Turn
	input  components.TextInput
	busy   bool
	errMsg string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen. The tutor opens the conversation so the
// learner never faces a blank prompt.
func New(st *game.State) *ChatScreen {
	opener := fmt.Sprintf("¡Hola, %s! ¿De qué quieres hablar hoy?", st.Profile.Name)
	if st.Profile.Name == "" {
		opener = "¡Hola! ¿De qué quieres hablar hoy?"
	}
	return &ChatScreen{
		game:  st,
		turns: []chatsvc.Turn{{Role: llm.RoleAssistant, Text: opener}},
		input: components.NewTextInput("Escribe en español...", false, 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Practice chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.busy = false
		if msg.err != nil {
			c.errMsg = msg.err.Error()
			return c, nil
		}
		c.turns = append(c.turns, chatsvc.Turn{Role: llm.RoleAssistant, Text: msg.text})
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send appends the learner's line and asks the tutor for the next turn.
func (c *ChatScreen) send() tea.Cmd {
	if c.busy {
		return nil
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}

	c.turns = append(c.turns, chatsvc.Turn{Role: llm.RoleUser, Text: text})
	c.input.Model.SetValue("")
	c.busy = true
	c.errMsg = ""

	history := make([]chatsvc.Turn, len(c.turns))
	copy(history, c.turns)
	learner := chatsvc.Learner{
		Level:          c.game.Profile.Level,
		NativeLanguage: c.game.Profile.NativeLanguage,
	}
	tutor := c.game.Tutor
	return func() tea.Msg {
		reply, err := tutor.Reply(context.Background(), learner, history)
		return replyMsg{text: reply, err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("CONVERSACIÓN"))
	b.WriteString("\n\n")

	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	youStyle := lipgloss.NewStyle().Foreground(theme.Text)
	wrap := lipgloss.NewStyle().Width(cw - 4)

	lines := make([]string, 0, len(c.turns))
	for _, t := range c.turns {
		label, style := "Tutor", tutorStyle
		if t.Role == llm.RoleUser {
			label, style = "Tú", youStyle
		}
		lines = append(lines, style.Bold(true).Render(label+":")+"\n"+wrap.Render(style.Render(t.Text)))
	}
	if c.busy {
		lines = append(lines, theme.Hint.Render("Tutor is thinking..."))
	}

	// Show only the turns that fit above the input line.
	transcript := strings.Join(lines, "\n")
	avail := height - 8
	if rows := strings.Split(transcript, "\n"); avail > 0 && len(rows) > avail {
		transcript = strings.Join(rows[len(rows)-avail:], "\n")
	}
	b.WriteString(transcript)
	b.WriteString("\n\n")

	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("> " + c.input.View())

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}
