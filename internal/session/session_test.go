package session

import (
	"testing"
	"time"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/profile"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newAttempt(t *testing.T, p *profile.Profile, expert bool, exs []exercise.Exercise) *State {
	t.Helper()
	s := New()
	if err := s.Begin(p, "lesson-1", expert, t0); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := s.Deliver(exs, t0); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	return s
}

func twoTranslates() []exercise.Exercise {
	return []exercise.Exercise{
		{ID: "a", Kind: exercise.Translate, Question: "hello", CorrectAnswer: "hola"},
		{ID: "b", Kind: exercise.Translate, Question: "goodbye", CorrectAnswer: "adiós"},
	}
}

func TestBeginRequiresHearts(t *testing.T) {
	p := profile.New(t0)
	p.Hearts = 0
	s := New()
	if err := s.Begin(p, "lesson-1", false, t0); err != ErrNoHearts {
		t.Fatalf("Begin with empty pool: got %v, want ErrNoHearts", err)
	}
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
}

func TestBeginRefusedMidSession(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())
	if err := s.Begin(p, "lesson-2", false, t0); err != ErrWrongPhase {
		t.Fatalf("second Begin: got %v, want ErrWrongPhase", err)
	}
}

func TestDeliverEmptyReturnsToIdle(t *testing.T) {
	p := profile.New(t0)
	s := New()
	if err := s.Begin(p, "lesson-1", false, t0); err != nil {
		t.Fatal(err)
	}
	if err := s.Deliver(nil, t0); err == nil {
		t.Fatal("Deliver(nil) should error")
	}
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle after failed delivery", s.Phase)
	}
}

func TestWrongAnswerCostsHeart(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())

	correct, err := s.SubmitText(p, "bonjour", t0)
	if err != nil {
		t.Fatal(err)
	}
	if correct {
		t.Error("wrong answer scored correct")
	}
	if p.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", p.Hearts, profile.MaxHearts-1)
	}

	s.Advance(t0)
	correct, err = s.SubmitText(p, "  Adiós! ", t0)
	if err != nil {
		t.Fatal(err)
	}
	if !correct {
		t.Error("normalized answer scored wrong")
	}
	if p.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d after correct answer, want unchanged", p.Hearts)
	}
}

func TestAdvanceThroughToCompleted(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())

	if _, err := s.SubmitText(p, "hola", t0); err != nil {
		t.Fatal(err)
	}
	s.Advance(t0)
	if s.Current() == nil || s.Current().ID != "b" {
		t.Fatal("expected second exercise to be current")
	}
	if _, err := s.SubmitText(p, "adiós", t0); err != nil {
		t.Fatal(err)
	}
	s.Advance(t0)
	if s.Phase != PhaseCompleted {
		t.Errorf("phase = %v, want completed", s.Phase)
	}
	if s.Current() != nil {
		t.Error("Current should be nil after completion")
	}
}

func TestSubmitRefusedDuringFeedback(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())
	if _, err := s.SubmitText(p, "hola", t0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitText(p, "hola", t0); err != ErrWrongPhase {
		t.Fatalf("submit during feedback: got %v, want ErrWrongPhase", err)
	}
}

func TestSpeechAnalysisFlow(t *testing.T) {
	p := profile.New(t0)
	exs := []exercise.Exercise{
		{ID: "s", Kind: exercise.Speaking, Question: "say hola", CorrectAnswer: "hola"},
	}
	s := newAttempt(t, p, false, exs)

	if err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitText(p, "hola", t0); err != ErrBusy {
		t.Fatalf("submit while analyzing: got %v, want ErrBusy", err)
	}
	correct, err := s.SubmitSpeech(p, 82, t0)
	if err != nil {
		t.Fatal(err)
	}
	if !correct {
		t.Error("score 82 should pass")
	}

	// Failing score costs a heart.
	p2 := profile.New(t0)
	s2 := newAttempt(t, p2, false, exs)
	if err := s2.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	if correct, _ := s2.SubmitSpeech(p2, 60, t0); correct {
		t.Error("score 60 should fail")
	}
	if p2.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", p2.Hearts, profile.MaxHearts-1)
	}
}

func TestCancelAnalysis(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, []exercise.Exercise{
		{ID: "s", Kind: exercise.Speaking, CorrectAnswer: "hola"},
	})
	if err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	s.CancelAnalysis()
	if err := s.BeginAnalysis(); err != nil {
		t.Fatalf("BeginAnalysis after cancel: %v", err)
	}
}

func TestExpertCountdownExpiry(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, true, twoTranslates())

	if s.Expired(t0.Add(19 * time.Second)) {
		t.Error("countdown expired early")
	}
	late := t0.Add(20 * time.Second)
	if !s.Expired(late) {
		t.Fatal("countdown should be expired at 20s")
	}
	if !s.Expire(p, late) {
		t.Fatal("Expire returned false on expired countdown")
	}
	if p.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d, want heart lost on expiry", p.Hearts)
	}
	// Expiry forces the advance: second exercise is live with a fresh deadline.
	if s.Current() == nil || s.Current().ID != "b" {
		t.Fatal("expected forced advance to second exercise")
	}
	if got := s.Remaining(late); got != 20*time.Second {
		t.Errorf("fresh countdown remaining = %v, want 20s", got)
	}
}

func TestNoCountdownOutsideExpertMode(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())
	if s.Expired(t0.Add(time.Hour)) {
		t.Error("non-expert session must never expire")
	}
	if s.Remaining(t0) != 0 {
		t.Error("non-expert session has no countdown")
	}
}

func TestCountdownHeldDuringAnalysis(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, true, []exercise.Exercise{
		{ID: "s", Kind: exercise.Speaking, CorrectAnswer: "hola"},
	})
	if err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	if s.Expired(t0.Add(time.Minute)) {
		t.Error("countdown must not expire while a recording is being scored")
	}
}

func TestAbandonDiscardsEverything(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())
	if _, err := s.SubmitText(p, "hola", t0); err != nil {
		t.Fatal(err)
	}
	s.Abandon()
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
	if p.XP != 0 || p.Streak != 0 {
		t.Error("abandon must not grant rewards")
	}
	if p.HasCompleted("lesson-1") {
		t.Error("abandon must not complete the lesson")
	}
}

func TestSettlePerfectRun(t *testing.T) {
	p := profile.New(t0)
	lessons := lessongraph.Seed()
	lessonID := lessons[0].ID

	s := New()
	if err := s.Begin(p, lessonID, false, t0); err != nil {
		t.Fatal(err)
	}
	exs := make([]exercise.Exercise, 5)
	for i := range exs {
		exs[i] = exercise.Exercise{ID: string(rune('a' + i)), Kind: exercise.Translate, CorrectAnswer: "sí"}
	}
	if err := s.Deliver(exs, t0); err != nil {
		t.Fatal(err)
	}
	for range exs {
		if _, err := s.SubmitText(p, "sí", t0); err != nil {
			t.Fatal(err)
		}
		s.Advance(t0)
	}

	res, err := s.Settle(p, lessons, t0)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Perfect {
		t.Error("5/5 should be perfect")
	}
	if res.Outcome.XP != 75 || res.Outcome.Gems != 50 || res.Outcome.GCD != 2.5 {
		t.Errorf("outcome = %+v, want 75 XP / 50 gems / 2.5 GCD", res.Outcome)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak)
	}
	if !res.FirstCompletion {
		t.Error("first run should be a first completion")
	}
	if res.UnlockedLesson == nil || res.UnlockedLesson.ID != lessons[1].ID {
		t.Errorf("unlocked = %+v, want successor %s", res.UnlockedLesson, lessons[1].ID)
	}
	if !p.HasCompleted(lessonID) {
		t.Error("profile should record the completion")
	}
	if p.DailyXP != 75 {
		t.Errorf("dailyXP = %d, want 75", p.DailyXP)
	}
	if s.Phase != PhaseIdle {
		t.Errorf("phase after settle = %v, want idle", s.Phase)
	}
}

func TestSettleRepeatDoesNotReUnlock(t *testing.T) {
	p := profile.New(t0)
	lessons := lessongraph.Seed()
	lessonID := lessons[0].ID

	run := func() *Results {
		s := New()
		if err := s.Begin(p, lessonID, false, t0); err != nil {
			t.Fatal(err)
		}
		if err := s.Deliver(twoTranslates(), t0); err != nil {
			t.Fatal(err)
		}
		for s.Current() != nil {
			if _, err := s.SubmitText(p, s.Current().CorrectAnswer, t0); err != nil {
				t.Fatal(err)
			}
			s.Advance(t0)
		}
		res, err := s.Settle(p, lessons, t0)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	run()
	res := run()
	if res.FirstCompletion {
		t.Error("second run should not be a first completion")
	}
	if res.UnlockedLesson != nil {
		t.Error("repeat completion must not re-announce an unlock")
	}
	if res.Outcome.XP == 0 {
		t.Error("repeats still earn rewards")
	}
	if p.Streak != 2 {
		t.Errorf("streak = %d, want 2 after two settles", p.Streak)
	}
}

func TestDailyGoalCelebratedOnce(t *testing.T) {
	p := profile.New(t0)
	p.DailyGoal = 50
	lessons := lessongraph.Seed()

	run := func() *Results {
		s := New()
		if err := s.Begin(p, lessons[0].ID, false, t0); err != nil {
			t.Fatal(err)
		}
		exs := make([]exercise.Exercise, 5)
		for i := range exs {
			exs[i] = exercise.Exercise{ID: string(rune('a' + i)), Kind: exercise.Translate, CorrectAnswer: "sí"}
		}
		if err := s.Deliver(exs, t0); err != nil {
			t.Fatal(err)
		}
		for s.Current() != nil {
			if _, err := s.SubmitText(p, "sí", t0); err != nil {
				t.Fatal(err)
			}
			s.Advance(t0)
		}
		res, err := s.Settle(p, lessons, t0)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	// 75 XP crosses the 50 XP goal on the first run only.
	if res := run(); !res.DailyGoalReached {
		t.Error("first crossing should set DailyGoalReached")
	}
	if res := run(); res.DailyGoalReached {
		t.Error("the goal is celebrated once per day")
	}
}

func TestSettleRequiresCompleted(t *testing.T) {
	p := profile.New(t0)
	s := newAttempt(t, p, false, twoTranslates())
	if _, err := s.Settle(p, lessongraph.Seed(), t0); err != ErrWrongPhase {
		t.Fatalf("Settle mid-session: got %v, want ErrWrongPhase", err)
	}
}
