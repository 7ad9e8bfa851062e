package exgen

import (
	"strings"
	"testing"

	"github.com/parlolabs/parlo/internal/lessongraph"
)

func TestBuildUserMessageLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecentMistakes = 2

	input := testInput()
	input.RecentMistakes = []string{"first", "second", "third"}

	msg := buildUserMessage(input, cfg)
	if strings.Contains(msg, "first") {
		t.Error("oldest mistake should be dropped")
	}
	for _, want := range []string{"second", "third"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessageEmptyLists(t *testing.T) {
	msg := buildUserMessage(testInput(), DefaultConfig())
	if !strings.Contains(msg, "None") {
		t.Error("empty context lists should render as None")
	}
}

func TestBuildUserMessageLessonTypes(t *testing.T) {
	input := testInput()
	input.Lesson.Type = lessongraph.TypeRoleplay
	msg := buildUserMessage(input, DefaultConfig())
	if !strings.Contains(msg, "ROLEPLAY") {
		t.Error("roleplay lesson should request a roleplay mix")
	}

	input.Lesson.Type = lessongraph.TypeBoss
	msg = buildUserMessage(input, DefaultConfig())
	if !strings.Contains(msg, "boss") {
		t.Error("boss lesson should be labeled")
	}
}
