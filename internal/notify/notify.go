// Package notify produces the transient toasts raised when progression
// state crosses a notable threshold. The center is plain state; timers live
// in the UI event loop, which calls Dismiss when a toast's lifetime ends.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// TTL is how long a notification stays on screen before auto-expiry.
const TTL = 5 * time.Second

// Kind classifies a notification for icon and color selection.
type Kind string

const (
	KindStreak  Kind = "STREAK"
	KindMission Kind = "MISSION"
	KindLesson  Kind = "LESSON"
	KindXP      Kind = "XP"
)

// Icon returns the default display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindStreak:
		return "🔥"
	case KindMission:
		return "🎯"
	case KindLesson:
		return "📖"
	case KindXP:
		return "⚡"
	default:
		return "✦"
	}
}

// Notification is one transient user-facing event.
type Notification struct {
	ID      string
	Title   string
	Message string
	Kind    Kind
	Icon    string
}

// Center holds the active notifications in arrival order.
type Center struct {
	active []Notification
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{}
}

// Push adds a notification and returns it with its assigned ID.
func (c *Center) Push(kind Kind, title, message string) Notification {
	n := Notification{
		ID:      uuid.New().String(),
		Title:   title,
		Message: message,
		Kind:    kind,
		Icon:    kind.Icon(),
	}
	c.active = append(c.active, n)
	return n
}

// Dismiss removes the notification with the given ID. Idempotent: unknown
// IDs (already expired or dismissed) are ignored.
func (c *Center) Dismiss(id string) {
	for i := range c.active {
		if c.active[i].ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications, oldest first.
func (c *Center) Active() []Notification {
	return c.active
}

// Len returns the number of live notifications.
func (c *Center) Len() int {
	return len(c.active)
}
