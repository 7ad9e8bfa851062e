package profile

import (
	"time"
)

// MaxHearts is the ceiling for the hearts counter.
const MaxHearts = 5

// CEFRLevel is a proficiency tier on the CEFR scale.
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// AllLevels returns the CEFR levels in ascending order.
func AllLevels() []CEFRLevel {
	return []CEFRLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// Multiplier returns the mission difficulty multiplier for the level.
func (l CEFRLevel) Multiplier() float64 {
	switch l {
	case LevelA2:
		return 1.2
	case LevelB1:
		return 1.5
	case LevelB2:
		return 2.0
	case LevelC1:
		return 2.5
	case LevelC2:
		return 3.0
	default:
		return 1.0
	}
}

// Goal is the learner's stated reason for studying.
type Goal string

const (
	GoalTravel       Goal = "TRAVEL"
	GoalWork         Goal = "WORK"
	GoalExams        Goal = "EXAMS"
	GoalConversation Goal = "CONVERSATION"
	GoalPersonal     Goal = "PERSONAL"
)

// Language is a supported native-language code.
type Language string

// SupportedLanguages lists the native-language codes offered at onboarding.
var SupportedLanguages = []Language{
	"en", "fr", "pt", "de", "it", "zh", "ja",
	"hi", "ar", "ru", "bn", "ur", "id", "ko",
	"vi", "tr", "te", "mr", "ta", "tl",
	"pl", "nl", "sv", "el", "he", "th",
}

// LanguageName maps a code to its English name for prompt construction.
func LanguageName(code Language) string {
	names := map[Language]string{
		"en": "English", "fr": "French", "pt": "Portuguese", "de": "German",
		"it": "Italian", "zh": "Chinese", "ja": "Japanese", "hi": "Hindi",
		"ar": "Arabic", "ru": "Russian", "bn": "Bengali", "ur": "Urdu",
		"id": "Indonesian", "ko": "Korean", "vi": "Vietnamese", "tr": "Turkish",
		"te": "Telugu", "mr": "Marathi", "ta": "Tamil", "tl": "Tagalog",
		"pl": "Polish", "nl": "Dutch", "sv": "Swedish", "el": "Greek",
		"he": "Hebrew", "th": "Thai",
	}
	if n, ok := names[code]; ok {
		return n
	}
	return "English"
}

// MissionType classifies what a daily mission counts.
type MissionType string

const (
	MissionXP      MissionType = "XP"
	MissionWords   MissionType = "WORDS"
	MissionLessons MissionType = "LESSONS"
	MissionPerfect MissionType = "PERFECT"
)

// Mission is a daily objective with a progress counter.
type Mission struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Reward    int         `json:"reward"`
	Target    int         `json:"target"`
	Current   int         `json:"current"`
	Completed bool        `json:"completed"`
	Type      MissionType `json:"type"`
}

// Achievement is a long-running unlockable with monotonic progress.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsUnlocked  bool   `json:"isUnlocked"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
}

// SavedPhrase is a phrase the learner bookmarked during an exercise.
type SavedPhrase struct {
	ID           string `json:"id"`
	Original     string `json:"original"`
	Translation  string `json:"translation"`
	Timestamp    int64  `json:"timestamp"`
	MasteryLevel int    `json:"masteryLevel"`
}

// ActivityDay is one calendar day's earned XP.
type ActivityDay struct {
	Date string `json:"date"` // YYYY-MM-DD
	XP   int    `json:"xp"`
}

// Profile is the full progression snapshot for one account.
// It is owned by the store and serialized as a single JSON document.
type Profile struct {
	Name              string        `json:"name"`
	Hearts            int           `json:"hearts"`
	LastHeartRegen    int64         `json:"lastHeartRegen"` // unix seconds; regen progress survives restarts
	Streak            int           `json:"streak"`
	StreakFreezes     int           `json:"streakFreezes"`
	Gems              int           `json:"gems"`
	XP                int           `json:"xp"`
	DailyXP           int           `json:"dailyXP"`
	DailyGoal         int           `json:"dailyGoal"`
	GCDBalance        float64       `json:"gcdBalance"`
	Level             CEFRLevel     `json:"level"`
	NativeLanguage    Language      `json:"nativeLanguage"`
	Goal              Goal          `json:"goal,omitempty"`
	CompletedLessons  []string      `json:"completedLessons"`
	SavedPhrases      []SavedPhrase `json:"savedPhrases"`
	Missions          []Mission     `json:"missions"`
	LastMissionUpdate string        `json:"lastMissionUpdate,omitempty"`
	Achievements      []Achievement `json:"achievements"`
	ActivityHistory   []ActivityDay `json:"activityHistory"`
	CurrentOutfit     string        `json:"currentOutfit"`
	UnlockedOutfits   []string      `json:"unlockedOutfits"`
	ExpertMode        bool          `json:"expertMode"`
	WalletAddress     string        `json:"walletAddress,omitempty"`
}

// New returns a fresh profile with onboarding defaults.
func New(now time.Time) *Profile {
	return &Profile{
		Hearts:         MaxHearts,
		LastHeartRegen: now.Unix(),
		Gems:           50,
		DailyGoal:      50,
		Level:          LevelA1,
		NativeLanguage: "en",
		Achievements:   seedAchievements(),
		ActivityHistory: []ActivityDay{
			{Date: DateKey(now), XP: 0},
		},
		CurrentOutfit:   "default",
		UnlockedOutfits: []string{"default"},
	}
}

// DateKey formats a time as the YYYY-MM-DD key used throughout the profile.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HasCompleted reports whether the lesson ID is in the completed set.
func (p *Profile) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// MarkCompleted adds a lesson ID to the completed set. Idempotent.
func (p *Profile) MarkCompleted(lessonID string) {
	if !p.HasCompleted(lessonID) {
		p.CompletedLessons = append(p.CompletedLessons, lessonID)
	}
}

// HasPhrase reports whether a phrase with the same original text is saved.
func (p *Profile) HasPhrase(original string) bool {
	for _, ph := range p.SavedPhrases {
		if ph.Original == original {
			return true
		}
	}
	return false
}

// SavePhrase prepends a phrase record unless one with the same original
// text already exists. Returns true if the phrase was added.
func (p *Profile) SavePhrase(phrase SavedPhrase) bool {
	if p.HasPhrase(phrase.Original) {
		return false
	}
	p.SavedPhrases = append([]SavedPhrase{phrase}, p.SavedPhrases...)
	return true
}

// RecordActivity merges xp into the entry for date, appending a new entry
// only when the day has no entry yet.
func (p *Profile) RecordActivity(date string, xp int) {
	for i := range p.ActivityHistory {
		if p.ActivityHistory[i].Date == date {
			p.ActivityHistory[i].XP += xp
			return
		}
	}
	p.ActivityHistory = append(p.ActivityHistory, ActivityDay{Date: date, XP: xp})
}

// HasOutfit reports whether the outfit is unlocked.
func (p *Profile) HasOutfit(id string) bool {
	for _, o := range p.UnlockedOutfits {
		if o == id {
			return true
		}
	}
	return false
}

// UnlockOutfit adds an outfit to the unlocked set and equips it.
func (p *Profile) UnlockOutfit(id string) {
	if !p.HasOutfit(id) {
		p.UnlockedOutfits = append(p.UnlockedOutfits, id)
	}
	p.CurrentOutfit = id
}

// EquipOutfit switches the current outfit. Locked outfits are refused so
// currentOutfit always stays inside unlockedOutfits.
func (p *Profile) EquipOutfit(id string) bool {
	if !p.HasOutfit(id) {
		return false
	}
	p.CurrentOutfit = id
	return true
}

// SpendGems deducts gems, refusing an overdraw.
func (p *Profile) SpendGems(amount int) bool {
	if amount < 0 || p.Gems < amount {
		return false
	}
	p.Gems -= amount
	return true
}

// SpendGCD deducts from the GCD balance, refusing an overdraw.
func (p *Profile) SpendGCD(amount float64) bool {
	if amount < 0 || p.GCDBalance < amount {
		return false
	}
	p.GCDBalance -= amount
	return true
}

// ConnectWallet sets the wallet address once. Later calls are no-ops.
func (p *Profile) ConnectWallet(address string) bool {
	if p.WalletAddress != "" {
		return false
	}
	p.WalletAddress = address
	return true
}

func seedAchievements() []Achievement {
	return []Achievement{
		{ID: "first-lesson", Title: "First Steps", Description: "Complete your first lesson.", Icon: "🌅", Target: 1},
		{ID: "streak-7", Title: "One Week Strong", Description: "Reach a 7 lesson streak.", Icon: "🔥", Target: 7},
		{ID: "gcd-10", Title: "Crypto Student", Description: "Earn your first 10 GCD coins.", Icon: "🪙", Target: 10},
		{ID: "phrases-10", Title: "Collector", Description: "Save 10 phrases to your phrasebook.", Icon: "🔖", Target: 10},
		{ID: "lessons-10", Title: "Scholar", Description: "Complete 10 lessons.", Icon: "📚", Target: 10},
	}
}

// RefreshAchievements recomputes achievement progress from the profile.
// Progress never decreases and unlocks are one-way. Returns the titles of
// achievements that transitioned to unlocked in this call.
func (p *Profile) RefreshAchievements() []string {
	var unlocked []string
	for i := range p.Achievements {
		a := &p.Achievements[i]
		progress := a.Progress
		switch a.ID {
		case "first-lesson", "lessons-10":
			progress = len(p.CompletedLessons)
		case "streak-7":
			progress = p.Streak
		case "gcd-10":
			progress = int(p.GCDBalance)
		case "phrases-10":
			progress = len(p.SavedPhrases)
		}
		if progress > a.Target {
			progress = a.Target
		}
		if progress > a.Progress {
			a.Progress = progress
		}
		if !a.IsUnlocked && a.Progress >= a.Target {
			a.IsUnlocked = true
			unlocked = append(unlocked, a.Title)
		}
	}
	return unlocked
}
