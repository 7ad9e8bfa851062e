package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

// TextInput wraps the bubbles text input with Parlo styling. Screens that
// need echo control (the password prompt) reach through Model directly.
type TextInput struct {
	Model textinput.Model

	digitsOnly bool
	maxWidth   int
}

// NewTextInput returns a focused input. When digitsOnly is set, character
// keys other than digits are swallowed before they reach the inner model.
func NewTextInput(placeholder string, digitsOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = maxWidth
	m.Focus()
	return TextInput{Model: m, digitsOnly: digitsOnly, maxWidth: maxWidth}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.digitsOnly {
		if key, ok := msg.(tea.KeyPressMsg); ok && rejectNonDigit(key) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// rejectNonDigit reports whether a single-rune key press should be dropped.
// Editing and navigation keys (backspace, arrows, enter) pass through.
func rejectNonDigit(key tea.KeyPressMsg) bool {
	s := key.String()
	if len(s) != 1 {
		return false
	}
	return s[0] < '0' || s[0] > '9'
}

func (t TextInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(t.Model.View())
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}
