package missions

import (
	"testing"
	"time"

	"github.com/parlolabs/parlo/internal/profile"
)

func newProfile(level profile.CEFRLevel) *profile.Profile {
	p := profile.New(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	p.Level = level
	return p
}

func missionByType(p *profile.Profile, t profile.MissionType) *profile.Mission {
	for i := range p.Missions {
		if p.Missions[i].Type == t {
			return &p.Missions[i]
		}
	}
	return nil
}

func TestRegenerateWhenEmpty(t *testing.T) {
	p := newProfile(profile.LevelA1)
	p.DailyXP = 42

	if !RegenerateIfStale(p, "2025-06-01") {
		t.Fatal("empty mission list should regenerate")
	}
	if len(p.Missions) != 4 {
		t.Fatalf("len(Missions) = %d, want 4", len(p.Missions))
	}
	if p.DailyXP != 0 {
		t.Errorf("DailyXP = %d, want 0 after regeneration", p.DailyXP)
	}
	if p.LastMissionUpdate != "2025-06-01" {
		t.Errorf("LastMissionUpdate = %q", p.LastMissionUpdate)
	}
}

func TestRegenerateSkippedSameDay(t *testing.T) {
	p := newProfile(profile.LevelA1)
	RegenerateIfStale(p, "2025-06-01")
	missionByType(p, profile.MissionXP).Current = 10
	p.DailyXP = 10

	if RegenerateIfStale(p, "2025-06-01") {
		t.Error("same-day regeneration should be skipped")
	}
	if missionByType(p, profile.MissionXP).Current != 10 {
		t.Error("mission progress should be untouched")
	}
	if p.DailyXP != 10 {
		t.Error("dailyXP should be untouched")
	}
}

func TestRegenerateOnNewDay(t *testing.T) {
	p := newProfile(profile.LevelA1)
	RegenerateIfStale(p, "2025-06-01")
	missionByType(p, profile.MissionLessons).Current = 1
	p.DailyXP = 30

	if !RegenerateIfStale(p, "2025-06-02") {
		t.Fatal("new day should regenerate")
	}
	if missionByType(p, profile.MissionLessons).Current != 0 {
		t.Error("missions should be replaced wholesale")
	}
	if p.DailyXP != 0 {
		t.Error("dailyXP should reset")
	}
}

func TestTargetScaling(t *testing.T) {
	tests := []struct {
		level       profile.CEFRLevel
		wantXP      int
		wantWords   int
		wantLessons int
	}{
		{profile.LevelA1, 40, 3, 2},
		{profile.LevelA2, 40, 4, 2},
		{profile.LevelB1, 40, 5, 2},
		{profile.LevelB2, 40, 6, 2},
		{profile.LevelC1, 40, 8, 4},
		{profile.LevelC2, 40, 9, 4},
	}

	for _, tt := range tests {
		p := newProfile(tt.level)
		RegenerateIfStale(p, "2025-06-01")

		if got := missionByType(p, profile.MissionXP).Target; got != tt.wantXP {
			t.Errorf("%s: XP target = %d, want %d", tt.level, got, tt.wantXP)
		}
		if got := missionByType(p, profile.MissionWords).Target; got != tt.wantWords {
			t.Errorf("%s: WORDS target = %d, want %d", tt.level, got, tt.wantWords)
		}
		if got := missionByType(p, profile.MissionLessons).Target; got != tt.wantLessons {
			t.Errorf("%s: LESSONS target = %d, want %d", tt.level, got, tt.wantLessons)
		}
		if got := missionByType(p, profile.MissionPerfect).Target; got != 1 {
			t.Errorf("%s: PERFECT target = %d, want 1", tt.level, got)
		}
	}
}

func TestAdvanceLessonComplete(t *testing.T) {
	p := newProfile(profile.LevelA1)
	RegenerateIfStale(p, "2025-06-01")
	gemsBefore := p.Gems

	done := AdvanceLessonComplete(p, 30, false)
	if len(done) != 0 {
		t.Errorf("completed = %v, want none", done)
	}
	if got := missionByType(p, profile.MissionXP).Current; got != 30 {
		t.Errorf("XP current = %d, want 30", got)
	}
	if got := missionByType(p, profile.MissionLessons).Current; got != 1 {
		t.Errorf("LESSONS current = %d, want 1", got)
	}
	if got := missionByType(p, profile.MissionPerfect).Current; got != 0 {
		t.Errorf("PERFECT current = %d, want 0 for imperfect lesson", got)
	}

	// Second lesson: perfect, and enough XP to finish the XP mission.
	done = AdvanceLessonComplete(p, 75, true)
	completedTypes := map[profile.MissionType]bool{}
	for _, m := range done {
		completedTypes[m.Type] = true
	}
	if !completedTypes[profile.MissionXP] || !completedTypes[profile.MissionLessons] || !completedTypes[profile.MissionPerfect] {
		t.Errorf("completed types = %v, want XP+LESSONS+PERFECT", completedTypes)
	}

	// Current clamped to target.
	xpM := missionByType(p, profile.MissionXP)
	if xpM.Current != xpM.Target {
		t.Errorf("XP current = %d, want clamped to %d", xpM.Current, xpM.Target)
	}

	// Rewards credited once per mission.
	wantGems := gemsBefore + rewardXP + rewardLessons + rewardPerfect
	if p.Gems != wantGems {
		t.Errorf("Gems = %d, want %d", p.Gems, wantGems)
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	p := newProfile(profile.LevelA1)
	RegenerateIfStale(p, "2025-06-01")

	if done := AdvanceLessonComplete(p, 100, true); len(done) != 3 {
		t.Fatalf("first advance completed %d missions, want 3", len(done))
	}
	gems := p.Gems

	// Same events again must not re-complete or re-reward.
	if done := AdvanceLessonComplete(p, 100, true); len(done) != 0 {
		t.Errorf("second advance completed %v, want none", done)
	}
	if p.Gems != gems {
		t.Errorf("Gems changed on re-advance: %d -> %d", gems, p.Gems)
	}
}

func TestAdvancePhraseSaved(t *testing.T) {
	p := newProfile(profile.LevelA1)
	RegenerateIfStale(p, "2025-06-01")

	words := missionByType(p, profile.MissionWords)
	var done []profile.Mission
	for i := 0; i < words.Target; i++ {
		done = AdvancePhraseSaved(p)
	}
	if len(done) != 1 || done[0].Type != profile.MissionWords {
		t.Fatalf("final save should complete the WORDS mission, got %v", done)
	}
	if !words.Completed || words.Current != words.Target {
		t.Errorf("WORDS mission = %+v", *words)
	}

	// Saves past the target are inert.
	if done := AdvancePhraseSaved(p); len(done) != 0 {
		t.Error("extra save should not re-complete")
	}
	if words.Current != words.Target {
		t.Error("current must never exceed target")
	}
}

func TestCompletedIffCurrentReachesTarget(t *testing.T) {
	p := newProfile(profile.LevelB2)
	RegenerateIfStale(p, "2025-06-01")

	for _, m := range p.Missions {
		if m.Completed {
			t.Errorf("%s starts completed", m.Type)
		}
	}

	AdvanceLessonComplete(p, 39, false) // one under the XP target of 40
	if missionByType(p, profile.MissionXP).Completed {
		t.Error("XP mission completed below target")
	}
	AdvanceLessonComplete(p, 1, false)
	if !missionByType(p, profile.MissionXP).Completed {
		t.Error("XP mission should complete at target")
	}
}
