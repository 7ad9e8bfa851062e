package profile

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	p := New(now)

	if p.Hearts != MaxHearts {
		t.Errorf("Hearts = %d, want %d", p.Hearts, MaxHearts)
	}
	if p.Gems != 50 {
		t.Errorf("Gems = %d, want 50", p.Gems)
	}
	if p.DailyGoal != 50 {
		t.Errorf("DailyGoal = %d, want 50", p.DailyGoal)
	}
	if p.Level != LevelA1 {
		t.Errorf("Level = %s, want A1", p.Level)
	}
	if p.CurrentOutfit != "default" || !p.HasOutfit("default") {
		t.Error("default outfit should be equipped and unlocked")
	}
	if len(p.ActivityHistory) != 1 || p.ActivityHistory[0].Date != "2025-06-01" {
		t.Errorf("ActivityHistory = %+v, want single entry for 2025-06-01", p.ActivityHistory)
	}
}

func TestLevelMultiplier(t *testing.T) {
	tests := []struct {
		level CEFRLevel
		want  float64
	}{
		{LevelA1, 1.0},
		{LevelA2, 1.2},
		{LevelB1, 1.5},
		{LevelB2, 2.0},
		{LevelC1, 2.5},
		{LevelC2, 3.0},
		{CEFRLevel("bogus"), 1.0},
	}
	for _, tt := range tests {
		if got := tt.level.Multiplier(); got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSavePhraseDedupe(t *testing.T) {
	p := New(time.Now())

	first := SavedPhrase{ID: "1", Original: "el perro", Translation: "the dog"}
	if !p.SavePhrase(first) {
		t.Fatal("first save should succeed")
	}
	second := SavedPhrase{ID: "2", Original: "el gato", Translation: "the cat"}
	if !p.SavePhrase(second) {
		t.Fatal("second save should succeed")
	}

	// Most recent first.
	if p.SavedPhrases[0].Original != "el gato" {
		t.Errorf("newest phrase should be first, got %q", p.SavedPhrases[0].Original)
	}

	// Duplicate by original text is refused.
	dup := SavedPhrase{ID: "3", Original: "el perro", Translation: "the dog"}
	if p.SavePhrase(dup) {
		t.Error("duplicate save should be refused")
	}
	if len(p.SavedPhrases) != 2 {
		t.Errorf("len(SavedPhrases) = %d, want 2", len(p.SavedPhrases))
	}
}

func TestRecordActivityMergesSameDay(t *testing.T) {
	p := New(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	p.RecordActivity("2025-06-01", 30)
	p.RecordActivity("2025-06-01", 45)
	p.RecordActivity("2025-06-02", 15)

	if len(p.ActivityHistory) != 2 {
		t.Fatalf("len(ActivityHistory) = %d, want 2", len(p.ActivityHistory))
	}
	if p.ActivityHistory[0].XP != 75 {
		t.Errorf("same-day XP = %d, want 75", p.ActivityHistory[0].XP)
	}
	if p.ActivityHistory[1].Date != "2025-06-02" || p.ActivityHistory[1].XP != 15 {
		t.Errorf("second day = %+v", p.ActivityHistory[1])
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	p := New(time.Now())
	p.MarkCompleted("1")
	p.MarkCompleted("1")
	if len(p.CompletedLessons) != 1 {
		t.Errorf("len(CompletedLessons) = %d, want 1", len(p.CompletedLessons))
	}
}

func TestOutfitInvariant(t *testing.T) {
	p := New(time.Now())

	if p.EquipOutfit("pirate") {
		t.Error("equipping a locked outfit should be refused")
	}
	if p.CurrentOutfit != "default" {
		t.Errorf("CurrentOutfit = %q, want default", p.CurrentOutfit)
	}

	p.UnlockOutfit("pirate")
	if p.CurrentOutfit != "pirate" {
		t.Errorf("CurrentOutfit = %q, want pirate", p.CurrentOutfit)
	}
	if !p.EquipOutfit("default") {
		t.Error("equipping an unlocked outfit should succeed")
	}
}

func TestSpendRefusesOverdraw(t *testing.T) {
	p := New(time.Now())
	p.Gems = 30
	p.GCDBalance = 2.5

	if p.SpendGems(50) {
		t.Error("gem overdraw should be refused")
	}
	if !p.SpendGems(30) || p.Gems != 0 {
		t.Errorf("spend failed, Gems = %d", p.Gems)
	}
	if p.SpendGCD(5.0) {
		t.Error("GCD overdraw should be refused")
	}
	if !p.SpendGCD(2.5) || p.GCDBalance != 0 {
		t.Errorf("spend failed, GCDBalance = %v", p.GCDBalance)
	}
}

func TestConnectWalletSetOnce(t *testing.T) {
	p := New(time.Now())
	if !p.ConnectWallet("0x74...f4") {
		t.Fatal("first connect should succeed")
	}
	if p.ConnectWallet("0xother") {
		t.Error("second connect should be refused")
	}
	if p.WalletAddress != "0x74...f4" {
		t.Errorf("WalletAddress = %q", p.WalletAddress)
	}
}

func TestRefreshAchievements(t *testing.T) {
	p := New(time.Now())

	p.MarkCompleted("1")
	unlocked := p.RefreshAchievements()
	if len(unlocked) != 1 || unlocked[0] != "First Steps" {
		t.Errorf("unlocked = %v, want [First Steps]", unlocked)
	}

	// Unlock is one-way and does not repeat.
	p.CompletedLessons = nil
	unlocked = p.RefreshAchievements()
	if len(unlocked) != 0 {
		t.Errorf("re-refresh unlocked = %v, want none", unlocked)
	}
	for _, a := range p.Achievements {
		if a.ID == "first-lesson" {
			if !a.IsUnlocked || a.Progress != 1 {
				t.Errorf("first-lesson regressed: %+v", a)
			}
		}
	}
}
