package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Action runs when the entry
// is chosen; Disabled entries are skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is the arrow-key navigated list used on the home screen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled entry.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, it := range items {
		if !it.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// move steps the cursor by dir, skipping disabled entries. The cursor
// stays put when no enabled entry exists in that direction.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update handles up/down/j/k navigation and enter activation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
			return m, it.Action()
		}
	}
	return m, nil
}

// View renders the entries with a pointer on the selected one.
func (m Menu) View() string {
	var b strings.Builder
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	for i, it := range m.Items {
		if i == m.Selected {
			b.WriteString(cursor.Render("  ▸ " + it.Label))
		} else {
			b.WriteString(theme.Body.Render("    " + it.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
