package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/screen"
)

type fakeScreen struct {
	name    string
	started bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.started = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func newStack(t *testing.T, names ...string) (*Router, []*fakeScreen) {
	t.Helper()
	if len(names) == 0 {
		t.Fatal("newStack needs at least a root screen")
	}
	all := make([]*fakeScreen, len(names))
	all[0] = &fakeScreen{name: names[0]}
	r := New(all[0])
	for i, n := range names[1:] {
		all[i+1] = &fakeScreen{name: n}
		r.Push(all[i+1])
	}
	return r, all
}

func assertActive(t *testing.T, r *Router, want string) {
	t.Helper()
	got := r.Active().Title()
	if got != want {
		t.Fatalf("active screen = %q, want %q", got, want)
	}
}

func TestPushStacksAndStarts(t *testing.T) {
	r, all := newStack(t, "home", "lessons")

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "lessons")
	if !all[1].started {
		t.Error("pushed screen was not Init()ed")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r, _ := newStack(t, "home", "lessons")

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "home")
}

func TestPopKeepsRoot(t *testing.T) {
	r, _ := newStack(t, "home")

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 after popping the root", r.Depth())
	}
	assertActive(t, r, "home")
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r, _ := newStack(t, "home", "lesson")

	sum := &fakeScreen{name: "summary"}
	r.Replace(sum)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 after replace", r.Depth())
	}
	assertActive(t, r, "summary")
	if !sum.started {
		t.Error("replacement screen was not Init()ed")
	}
	r.Pop()
	assertActive(t, r, "home")
}

func TestNavigationMessages(t *testing.T) {
	r, _ := newStack(t, "home")

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "lessons"}})
	assertActive(t, r, "lessons")

	next := &fakeScreen{name: "lesson"}
	r.Update(ReplaceScreenMsg{Screen: next})
	assertActive(t, r, "lesson")
	if !next.started {
		t.Error("ReplaceScreenMsg did not Init() the new screen")
	}

	r.Update(PopScreenMsg{})
	assertActive(t, r, "home")
}

func TestViewRendersActive(t *testing.T) {
	r, _ := newStack(t, "home", "stats")

	if got := r.View(80, 24); got != "stats" {
		t.Fatalf("View() = %q, want %q", got, "stats")
	}
}
