// Package router keeps the navigation stack for the TUI. Screens never
// hold references to each other; they navigate by emitting one of the
// messages below, which the app model feeds back into the router.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen and returns to the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen in place. A finished lesson
// replaces itself with its summary so that popping the summary lands on
// the lesson list, not back inside the lesson.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. The bottom entry is never popped.
type Router struct {
	screens []screen.Screen
}

// New returns a router whose stack holds only the root screen.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

// Push places s on top of the stack and starts it.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.screens = append(r.screens, s)
	return s.Init()
}

// Pop discards the top screen. Popping the root is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.screens) > 1 {
		r.screens = r.screens[:len(r.screens)-1]
	}
	return nil
}

// Replace swaps the top of the stack for s and starts it. On an empty
// stack it behaves like Push.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.screens) == 0 {
		return r.Push(s)
	}
	r.screens[len(r.screens)-1] = s
	return s.Init()
}

// Active returns the screen currently on top, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Update consumes navigation messages itself and routes everything else
// to the active screen, storing whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.screens[len(r.screens)-1] = next
	return cmd
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	top := r.Active()
	if top == nil {
		return ""
	}
	return top.View(width, height)
}
