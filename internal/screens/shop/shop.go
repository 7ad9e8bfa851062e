// Package shop implements the gem and GCD store screen.
package shop

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/screen"
	shopsvc "github.com/parlolabs/parlo/internal/shop"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// ShopScreen lists the catalog and handles purchases and outfit changes.
type ShopScreen struct {
	game    *game.State
	items   []shopsvc.Item
	cursor  int
	message string
	isError bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates the shop screen.
func New(st *game.State) *ShopScreen {
	return &ShopScreen{game: st, items: shopsvc.Catalog()}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Buy"},
		{Key: "E", Description: "Equip outfit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "enter":
		s.buy()
	case "e", "E":
		s.equip()
	}
	return s, nil
}

func (s *ShopScreen) buy() {
	item := s.items[s.cursor]
	bought, err := shopsvc.Purchase(s.game.Profile, item.ID)
	if err != nil {
		s.message = err.Error()
		s.isError = true
		return
	}

	s.message = fmt.Sprintf("Purchased %s!", bought.Name)
	s.isError = false
	s.persist()
}

// persist writes the profile after a purchase or equip; a failed write
// replaces the status line so the learner knows the change may not stick.
func (s *ShopScreen) persist() {
	if err := s.game.Save(context.Background()); err != nil {
		s.message = "Could not save: " + err.Error()
		s.isError = true
	}
}

func (s *ShopScreen) equip() {
	item := s.items[s.cursor]
	if item.Kind != shopsvc.KindOutfit {
		return
	}
	p := s.game.Profile
	if !p.HasOutfit(item.ID) {
		s.message = "Buy this outfit first."
		s.isError = true
		return
	}
	if p.EquipOutfit(item.ID) {
		s.message = fmt.Sprintf("Equipped %s.", item.Name)
		s.isError = false
		s.persist()
	}
}

func (s *ShopScreen) View(width, height int) string {
	p := s.game.Profile

	var b strings.Builder

	balance := fmt.Sprintf("◆ %d gems    ⬡ %.1f GCD", p.Gems, p.GCDBalance)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(balance)))
	b.WriteString("\n\n")

	var rows []string
	for i, item := range s.items {
		rows = append(rows, s.renderItem(i, item))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))

	if s.message != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.isError {
			style = style.Foreground(theme.Error)
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(s.message)))
	}

	return b.String()
}

func (s *ShopScreen) renderItem(i int, item shopsvc.Item) string {
	p := s.game.Profile

	price := fmt.Sprintf("%.0f gems", item.Price)
	if item.Currency == shopsvc.CurrencyGCD {
		price = fmt.Sprintf("%.1f GCD", item.Price)
	}

	status := ""
	if item.Kind == shopsvc.KindOutfit && p.HasOutfit(item.ID) {
		status = "  [owned]"
		if p.CurrentOutfit == item.ID {
			status = "  [equipped]"
		}
	}

	prefix := "  "
	if i == s.cursor {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%-24s %-12s%s", prefix, item.Name, price, status)

	var style lipgloss.Style
	switch {
	case i == s.cursor:
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	case status != "":
		style = lipgloss.NewStyle().Foreground(theme.Success)
	default:
		style = theme.Body
	}

	out := style.Render(line)
	if i == s.cursor {
		out += "\n" + theme.Hint.Render("    "+item.Desc)
	}
	return out
}
