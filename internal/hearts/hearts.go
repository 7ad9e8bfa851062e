// Package hearts regulates the limited-attempt resource gating lesson play.
// Hearts decrement on wrong answers, floor at zero, and regenerate one per
// fixed wall-clock interval. The last-regeneration timestamp is persisted on
// the profile so elapsed time is credited across restarts.
package hearts

import (
	"errors"
	"time"

	"github.com/parlolabs/parlo/internal/profile"
)

// RegenInterval is the wall-clock time to regain one heart.
const RegenInterval = 2 * time.Hour

// ErrNoHearts blocks a lesson start while the learner has zero hearts.
var ErrNoHearts = errors.New("no hearts left: wait for them to regenerate")

// Lose decrements hearts by one, clamped at zero. It anchors the regen
// timestamp when leaving a full heart pool so the first regeneration
// interval starts counting from the loss, not from some stale timestamp.
func Lose(p *profile.Profile, now time.Time) int {
	if p.Hearts >= profile.MaxHearts {
		p.LastHeartRegen = now.Unix()
	}
	if p.Hearts > 0 {
		p.Hearts--
	}
	return p.Hearts
}

// Regenerate increments hearts by one, clamped at the maximum.
func Regenerate(p *profile.Profile, now time.Time) int {
	if p.Hearts < profile.MaxHearts {
		p.Hearts++
	}
	p.LastHeartRegen = now.Unix()
	return p.Hearts
}

// CatchUp credits every whole regeneration interval elapsed since the
// persisted timestamp. Returns the number of hearts gained. At full hearts
// the timestamp is advanced so no interval is banked.
func CatchUp(p *profile.Profile, now time.Time) int {
	if p.Hearts >= profile.MaxHearts {
		p.LastHeartRegen = now.Unix()
		return 0
	}

	last := time.Unix(p.LastHeartRegen, 0)
	if p.LastHeartRegen == 0 || now.Before(last) {
		p.LastHeartRegen = now.Unix()
		return 0
	}

	intervals := int(now.Sub(last) / RegenInterval)
	if intervals <= 0 {
		return 0
	}

	gained := intervals
	if missing := profile.MaxHearts - p.Hearts; gained > missing {
		gained = missing
	}
	p.Hearts += gained

	if p.Hearts >= profile.MaxHearts {
		p.LastHeartRegen = now.Unix()
	} else {
		// Keep partial progress toward the next heart.
		p.LastHeartRegen = last.Add(time.Duration(intervals) * RegenInterval).Unix()
	}
	return gained
}

// Refill restores the full heart pool, e.g. after a shop purchase.
func Refill(p *profile.Profile) {
	p.Hearts = profile.MaxHearts
}

// NextRegen returns the time remaining until the next heart, or zero at
// full hearts.
func NextRegen(p *profile.Profile, now time.Time) time.Duration {
	if p.Hearts >= profile.MaxHearts {
		return 0
	}
	next := time.Unix(p.LastHeartRegen, 0).Add(RegenInterval)
	if d := next.Sub(now); d > 0 {
		return d
	}
	return 0
}

// CanStart reports whether a lesson may begin.
func CanStart(p *profile.Profile) error {
	if p.Hearts == 0 {
		return ErrNoHearts
	}
	return nil
}
