package rewards

import (
	"testing"
	"time"

	"github.com/parlolabs/parlo/internal/profile"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		expert   bool
		wantXP   int
		wantGems int
		wantGCD  float64
	}{
		{"perfect run", 5, 5, false, 75, 50, 2.5},
		{"expert partial", 3, 5, true, 60, 20, 0},
		{"zero correct", 0, 5, false, 0, 20, 0},
		{"high accuracy earns gcd", 4, 5, false, 60, 20, 2.5},
		{"just under gcd floor", 7, 9, false, 105, 20, 0},
		{"expert perfect", 5, 5, true, 100, 50, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.correct, tt.total, tt.expert)
			if got.XP != tt.wantXP {
				t.Errorf("XP = %d, want %d", got.XP, tt.wantXP)
			}
			if got.Gems != tt.wantGems {
				t.Errorf("Gems = %d, want %d", got.Gems, tt.wantGems)
			}
			if got.GCD != tt.wantGCD {
				t.Errorf("GCD = %v, want %v", got.GCD, tt.wantGCD)
			}
		})
	}
}

func TestGCDThreshold(t *testing.T) {
	// gcd = 2.5 iff accuracy >= 0.8, else 0.
	for correct := 0; correct <= 10; correct++ {
		got := Compute(correct, 10, false)
		wantGCD := 0.0
		if float64(correct)/10 >= GCDAccuracyFloor {
			wantGCD = GCDReward
		}
		if got.GCD != wantGCD {
			t.Errorf("Compute(%d, 10).GCD = %v, want %v", correct, got.GCD, wantGCD)
		}

		wantGems := BaseGems
		if correct == 10 {
			wantGems += PerfectGemBonus
		}
		if got.Gems != wantGems {
			t.Errorf("Compute(%d, 10).Gems = %d, want %d", correct, got.Gems, wantGems)
		}
	}
}

func TestApply(t *testing.T) {
	p := profile.New(time.Now())
	p.XP = 100
	p.DailyXP = 10
	p.Gems = 50
	p.GCDBalance = 1.0
	p.Streak = 3

	Apply(p, Outcome{XP: 75, Gems: 50, GCD: 2.5})

	if p.XP != 175 {
		t.Errorf("XP = %d, want 175", p.XP)
	}
	if p.DailyXP != 85 {
		t.Errorf("DailyXP = %d, want 85", p.DailyXP)
	}
	if p.Gems != 100 {
		t.Errorf("Gems = %d, want 100", p.Gems)
	}
	if p.GCDBalance != 3.5 {
		t.Errorf("GCDBalance = %v, want 3.5", p.GCDBalance)
	}
	if p.Streak != 4 {
		t.Errorf("Streak = %d, want 4", p.Streak)
	}
}

func TestApplyStreakAlwaysIncrements(t *testing.T) {
	p := profile.New(time.Now())
	Apply(p, Compute(0, 5, false))
	if p.Streak != 1 {
		t.Errorf("Streak = %d, want 1 even on a 0%% lesson", p.Streak)
	}
}
