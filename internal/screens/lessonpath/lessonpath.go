// Package lessonpath implements the lesson selection screen: the linear
// path of lessons with their lock, unlock, and completion state.
package lessonpath

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	lessonscreen "github.com/parlolabs/parlo/internal/screens/lesson"
	"github.com/parlolabs/parlo/internal/ui/layout"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// PathScreen lists the lesson path and starts lesson attempts.
type PathScreen struct {
	game   *game.State
	cursor int
	errMsg string
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

// New creates the lesson path screen with the cursor on the first
// available lesson.
func New(st *game.State) *PathScreen {
	s := &PathScreen{game: st}
	for i, l := range st.Lessons {
		if l.Status == lessongraph.StatusAvailable {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *PathScreen) Init() tea.Cmd {
	return nil
}

func (s *PathScreen) Title() string {
	return "Lesson Path"
}

func (s *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.errMsg = ""
	case "down", "j":
		if s.cursor < len(s.game.Lessons)-1 {
			s.cursor++
		}
		s.errMsg = ""
	case "enter":
		return s.startLesson()
	}
	return s, nil
}

func (s *PathScreen) startLesson() (screen.Screen, tea.Cmd) {
	lesson := s.game.Lessons[s.cursor]
	if lesson.Status == lessongraph.StatusLocked {
		s.errMsg = "Complete the previous lesson to unlock this one."
		return s, nil
	}

	err := s.game.Session.Begin(s.game.Profile, lesson.ID, s.game.Profile.ExpertMode, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	next := lessonscreen.New(s.game, lesson)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *PathScreen) View(width, height int) string {
	var b strings.Builder

	for i, l := range s.game.Lessons {
		b.WriteString(s.renderLesson(i, l, width))
		b.WriteString("\n")
		if i < len(s.game.Lessons)-1 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("   │"))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		if strings.Contains(s.errMsg, "hearts") {
			if d := hearts.NextRegen(s.game.Profile, time.Now()); d > 0 {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  Next heart in %s.", d.Round(time.Minute))))
			}
		}
	}

	content := b.String()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PathScreen) renderLesson(i int, l lessongraph.Lesson, width int) string {
	icon := statusIcon(l.Status)
	badge := typeBadge(l.Type)

	line := fmt.Sprintf(" %s  %s. %s%s", icon, l.ID, l.Title, badge)

	var style lipgloss.Style
	switch {
	case i == s.cursor:
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		line = "▸" + line[1:]
	case l.Status == lessongraph.StatusLocked:
		style = theme.Locked
	case l.Status == lessongraph.StatusCompleted:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	default:
		style = theme.Body
	}

	out := style.Render(line)
	if i == s.cursor {
		out += "\n" + theme.Hint.Render("      "+l.Description)
	}
	return out
}

func statusIcon(st lessongraph.Status) string {
	switch st {
	case lessongraph.StatusCompleted:
		return "✓"
	case lessongraph.StatusAvailable:
		return "●"
	default:
		return "🔒"
	}
}

func typeBadge(t lessongraph.Type) string {
	switch t {
	case lessongraph.TypeBoss:
		return "  [BOSS]"
	case lessongraph.TypeStory:
		return "  [STORY]"
	case lessongraph.TypeRoleplay:
		return "  [ROLEPLAY]"
	default:
		return ""
	}
}
