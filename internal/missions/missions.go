// Package missions maintains the rotating set of four daily objectives.
// Missions are replaced wholesale once per calendar day (or when the list is
// empty), with targets scaled by the learner's CEFR level, and advanced by
// gameplay events. Completion is one-way within a mission cycle.
package missions

import (
	"fmt"
	"math"

	"github.com/parlolabs/parlo/internal/profile"
)

// Gem rewards credited when a mission completes.
const (
	rewardXP      = 50
	rewardWords   = 20
	rewardLessons = 30
	rewardPerfect = 40
)

// RegenerateIfStale replaces all four missions when the profile's mission
// day differs from today or the list is empty, resetting dailyXP for the new
// cycle. Returns true if a regeneration happened.
func RegenerateIfStale(p *profile.Profile, today string) bool {
	if p.LastMissionUpdate == today && len(p.Missions) > 0 {
		return false
	}
	p.Missions = generate(p.Level, p.DailyGoal)
	p.LastMissionUpdate = today
	p.DailyXP = 0
	return true
}

// generate builds the four daily missions scaled by the level multiplier.
func generate(level profile.CEFRLevel, dailyGoal int) []profile.Mission {
	mult := level.Multiplier()

	xpTarget := int(math.Round(float64(dailyGoal) * 0.8))
	wordsTarget := int(math.Round(3 * mult))
	lessonsFactor := 1.0
	if mult > 2 {
		lessonsFactor = 2.0
	}
	lessonsTarget := int(math.Round(2 * lessonsFactor))

	return []profile.Mission{
		{
			ID:     "xp",
			Title:  fmt.Sprintf("Earn %d XP today", xpTarget),
			Type:   profile.MissionXP,
			Target: xpTarget,
			Reward: rewardXP,
		},
		{
			ID:     "words",
			Title:  fmt.Sprintf("Save %d new words", wordsTarget),
			Type:   profile.MissionWords,
			Target: wordsTarget,
			Reward: rewardWords,
		},
		{
			ID:     "lessons",
			Title:  fmt.Sprintf("Complete %d lessons", lessonsTarget),
			Type:   profile.MissionLessons,
			Target: lessonsTarget,
			Reward: rewardLessons,
		},
		{
			ID:     "perfect",
			Title:  "Finish a flawless lesson",
			Type:   profile.MissionPerfect,
			Target: 1,
			Reward: rewardPerfect,
		},
	}
}

// AdvanceLessonComplete advances mission counters for a finished lesson:
// the XP mission by the session's earned XP, the LESSONS mission by one,
// and the PERFECT mission by one when the lesson was 100% accurate.
// Newly completed missions have their gem reward credited and are returned
// so the caller can raise exactly one notification each.
func AdvanceLessonComplete(p *profile.Profile, sessionXP int, perfect bool) []profile.Mission {
	var done []profile.Mission
	for i := range p.Missions {
		m := &p.Missions[i]
		switch m.Type {
		case profile.MissionXP:
			if completed := bump(m, sessionXP); completed {
				p.Gems += m.Reward
				done = append(done, *m)
			}
		case profile.MissionLessons:
			if completed := bump(m, 1); completed {
				p.Gems += m.Reward
				done = append(done, *m)
			}
		case profile.MissionPerfect:
			if !perfect {
				continue
			}
			if completed := bump(m, 1); completed {
				p.Gems += m.Reward
				done = append(done, *m)
			}
		}
	}
	return done
}

// AdvancePhraseSaved advances the WORDS mission by one for a newly saved
// phrase. The caller is responsible for not reporting duplicate saves.
func AdvancePhraseSaved(p *profile.Profile) []profile.Mission {
	var done []profile.Mission
	for i := range p.Missions {
		m := &p.Missions[i]
		if m.Type != profile.MissionWords {
			continue
		}
		if completed := bump(m, 1); completed {
			p.Gems += m.Reward
			done = append(done, *m)
		}
	}
	return done
}

// bump increments a mission's counter, clamped to [0, target], and
// re-evaluates completion. Returns true only on the incomplete→complete
// transition so downstream rewards fire exactly once.
func bump(m *profile.Mission, amount int) bool {
	if m.Completed || amount <= 0 {
		// Already-complete missions stay put; current never exceeds target.
		return false
	}
	m.Current += amount
	if m.Current > m.Target {
		m.Current = m.Target
	}
	if m.Current >= m.Target {
		m.Completed = true
		return true
	}
	return false
}
