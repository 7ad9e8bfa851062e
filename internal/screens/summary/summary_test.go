package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/rewards"
	"github.com/parlolabs/parlo/internal/router"
	sess "github.com/parlolabs/parlo/internal/session"
)

func testResults() *sess.Results {
	return &sess.Results{
		Total:   5,
		Correct: 4,
		Perfect: false,
		Outcome: rewards.Outcome{XP: 60, Gems: 20, GCD: 2.5},
		Streak:  3,
		CompletedMissions: []profile.Mission{
			{ID: "m1", Title: "Complete 1 lesson", Reward: 50},
		},
		NewAchievements: []string{"First Steps"},
	}
}

func testLesson() lessongraph.Lesson {
	return lessongraph.Lesson{ID: "1", Title: "Greetings"}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testLesson(), testResults())
	if s.Title() != "Lesson Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testLesson(), testResults())
	view := s.View(80, 30)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Greetings", "4/5", "+60 XP", "+20 gems", "+2.5 GCD", "3 day streak"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PerfectBanner(t *testing.T) {
	res := testResults()
	res.Correct = res.Total
	res.Perfect = true
	s := New(testLesson(), res)
	if !strings.Contains(s.View(80, 30), "Perfect lesson") {
		t.Error("expected the perfect-lesson banner")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New(testLesson(), testResults())
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatal("expected a command from the dismiss key")
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Error("expected PopScreenMsg")
		}
	}
}
