package rewards

import (
	"github.com/parlolabs/parlo/internal/profile"
)

// Per-answer and bonus constants for lesson rewards.
const (
	XPPerCorrect     = 15
	ExpertXPBonus    = 5
	BaseGems         = 20
	PerfectGemBonus  = 30
	GCDReward        = 2.5
	GCDAccuracyFloor = 0.8
)

// Outcome is the reward computed for one completed lesson.
type Outcome struct {
	XP   int
	Gems int
	GCD  float64
}

// Compute derives the reward for a completed exercise set. Pure: no
// side effects, deterministic. totalCount must be > 0 (guaranteed by the
// session controller).
func Compute(correctCount, totalCount int, expertMode bool) Outcome {
	xp := correctCount * XPPerCorrect
	if expertMode {
		xp += correctCount * ExpertXPBonus
	}

	accuracy := float64(correctCount) / float64(totalCount)

	gems := BaseGems
	if accuracy == 1.0 {
		gems += PerfectGemBonus
	}

	var gcd float64
	if accuracy >= GCDAccuracyFloor {
		gcd = GCDReward
	}

	return Outcome{XP: xp, Gems: gems, GCD: gcd}
}

// Apply credits the outcome to the profile: xp, dailyXP, gems, GCD balance,
// and the streak (+1 on any lesson completion regardless of accuracy).
func Apply(p *profile.Profile, o Outcome) {
	p.XP += o.XP
	p.DailyXP += o.XP
	p.Gems += o.Gems
	p.GCDBalance += o.GCD
	p.Streak++
}
