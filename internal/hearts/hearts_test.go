package hearts

import (
	"errors"
	"testing"
	"time"

	"github.com/parlolabs/parlo/internal/profile"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProfile(hearts int) *profile.Profile {
	p := profile.New(epoch)
	p.Hearts = hearts
	return p
}

func TestLoseClampsAtZero(t *testing.T) {
	for start := 0; start <= profile.MaxHearts; start++ {
		p := newProfile(start)
		got := Lose(p, epoch)
		want := start - 1
		if want < 0 {
			want = 0
		}
		if got != want {
			t.Errorf("Lose from %d = %d, want %d", start, got, want)
		}
	}
}

func TestRegenerateClampsAtMax(t *testing.T) {
	for start := 0; start <= profile.MaxHearts; start++ {
		p := newProfile(start)
		got := Regenerate(p, epoch)
		want := start + 1
		if want > profile.MaxHearts {
			want = profile.MaxHearts
		}
		if got != want {
			t.Errorf("Regenerate from %d = %d, want %d", start, got, want)
		}
	}
}

func TestCanStart(t *testing.T) {
	p := newProfile(0)
	if err := CanStart(p); !errors.Is(err, ErrNoHearts) {
		t.Errorf("CanStart at 0 hearts = %v, want ErrNoHearts", err)
	}
	p.Hearts = 1
	if err := CanStart(p); err != nil {
		t.Errorf("CanStart at 1 heart = %v, want nil", err)
	}
}

func TestCatchUpCreditsElapsedIntervals(t *testing.T) {
	p := newProfile(2)
	p.LastHeartRegen = epoch.Unix()

	// 2.5 intervals elapsed: two hearts, half an interval banked.
	now := epoch.Add(5 * time.Hour)
	gained := CatchUp(p, now)
	if gained != 2 || p.Hearts != 4 {
		t.Fatalf("gained = %d, hearts = %d, want 2 and 4", gained, p.Hearts)
	}

	// The half interval carries over: one more hour completes the third.
	if d := NextRegen(p, now); d != time.Hour {
		t.Errorf("NextRegen = %v, want 1h", d)
	}
}

func TestCatchUpClampsAtMax(t *testing.T) {
	p := newProfile(1)
	p.LastHeartRegen = epoch.Unix()

	gained := CatchUp(p, epoch.Add(48*time.Hour))
	if gained != 4 || p.Hearts != profile.MaxHearts {
		t.Errorf("gained = %d, hearts = %d, want 4 and %d", gained, p.Hearts, profile.MaxHearts)
	}
}

func TestCatchUpNoopWhenFull(t *testing.T) {
	p := newProfile(profile.MaxHearts)
	p.LastHeartRegen = epoch.Unix()

	now := epoch.Add(10 * time.Hour)
	if gained := CatchUp(p, now); gained != 0 {
		t.Errorf("gained = %d, want 0", gained)
	}
	// Full pool advances the anchor so intervals are not banked.
	if p.LastHeartRegen != now.Unix() {
		t.Errorf("LastHeartRegen not advanced at full hearts")
	}
}

func TestCatchUpRecoversFromClockSkew(t *testing.T) {
	p := newProfile(2)
	p.LastHeartRegen = epoch.Add(24 * time.Hour).Unix() // future timestamp

	if gained := CatchUp(p, epoch); gained != 0 {
		t.Errorf("gained = %d, want 0", gained)
	}
	if p.LastHeartRegen != epoch.Unix() {
		t.Error("timestamp should reset to now on skew")
	}
}

func TestLoseFromFullAnchorsRegen(t *testing.T) {
	p := newProfile(profile.MaxHearts)
	p.LastHeartRegen = 0

	Lose(p, epoch)
	if p.LastHeartRegen != epoch.Unix() {
		t.Error("losing the first heart should anchor the regen timestamp")
	}
	if d := NextRegen(p, epoch); d != RegenInterval {
		t.Errorf("NextRegen = %v, want %v", d, RegenInterval)
	}
}
