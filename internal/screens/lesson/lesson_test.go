package lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screens/summary"
	sess "github.com/parlolabs/parlo/internal/session"
)

// memProfiles is an in-memory profile store for testing.
type memProfiles struct {
	saved map[string]*profile.Profile
	saves int
}

func (r *memProfiles) Load(_ context.Context, username string) (*profile.Profile, error) {
	return r.saved[username], nil
}

func (r *memProfiles) Save(_ context.Context, username string, p *profile.Profile) error {
	if r.saved == nil {
		r.saved = make(map[string]*profile.Profile)
	}
	r.saved[username] = p
	r.saves++
	return nil
}

func (r *memProfiles) Delete(_ context.Context, username string) error {
	delete(r.saved, username)
	return nil
}

// failingProfiles refuses every write.
type failingProfiles struct{ memProfiles }

func (r *failingProfiles) Save(context.Context, string, *profile.Profile) error {
	return errors.New("disk full")
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLessonScreen(t *testing.T) (*LessonScreen, *game.State) {
	t.Helper()
	now := time.Now()
	st := &game.State{
		Username: "ana",
		Profile:  profile.New(now),
		Lessons:  lessongraph.Seed(),
		Session:  sess.New(),
		Notify:   notify.NewCenter(),
		Profiles: &memProfiles{},
	}
	lesson := st.Lessons[0]
	if err := st.Session.Begin(st.Profile, lesson.ID, false, now); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return New(st, lesson), st
}

// deliver feeds a fixed exercise set, bypassing generation.
func deliver(t *testing.T, s *LessonScreen, exs []exercise.Exercise) {
	t.Helper()
	s.Update(exercisesReadyMsg{exercises: exs})
	if s.game.Session.Phase != sess.PhaseInProgress {
		t.Fatalf("expected PhaseInProgress after delivery, got %d", s.game.Session.Phase)
	}
}

func translateExercise(q, a string) exercise.Exercise {
	return exercise.Exercise{
		ID:            "t-" + q,
		Kind:          exercise.Translate,
		Question:      q,
		CorrectAnswer: a,
		Explanation:   "test explanation",
	}
}

func TestOfflineGenerationDelivers(t *testing.T) {
	s, st := testLessonScreen(t)

	// No Generator configured: the built-in bank serves the lesson.
	msg := s.generate()()
	ready, ok := msg.(exercisesReadyMsg)
	if !ok {
		t.Fatalf("expected exercisesReadyMsg, got %T", msg)
	}
	if ready.err != nil {
		t.Fatalf("offline generation failed: %v", ready.err)
	}
	if len(ready.exercises) == 0 {
		t.Fatal("expected at least one exercise")
	}

	s.Update(msg)
	if st.Session.Current() == nil {
		t.Fatal("expected a current exercise after delivery")
	}
}

func TestCorrectAnswerShowsFeedbackAndAdvances(t *testing.T) {
	s, st := testLessonScreen(t)
	deliver(t, s, []exercise.Exercise{
		translateExercise("Hello", "Hola"),
		translateExercise("Goodbye", "Adiós"),
	})

	s.input.Model.SetValue("hola")
	s.Update(specialKey(tea.KeyEnter))

	if !st.Session.ShowingFeedback {
		t.Fatal("expected feedback after a submission")
	}
	if st.Session.Correct != 1 {
		t.Errorf("correct count = %d, want 1", st.Session.Correct)
	}
	if st.Profile.Hearts != profile.MaxHearts {
		t.Errorf("a correct answer should not cost hearts, got %d", st.Profile.Hearts)
	}

	// Any key dismisses feedback and advances.
	s.Update(keyPress(' '))
	if st.Session.Index != 1 {
		t.Errorf("index = %d, want 1", st.Session.Index)
	}
}

func TestWrongAnswerCostsHeart(t *testing.T) {
	s, st := testLessonScreen(t)
	deliver(t, s, []exercise.Exercise{
		translateExercise("Hello", "Hola"),
		translateExercise("Goodbye", "Adiós"),
	})

	s.input.Model.SetValue("bonjour")
	s.Update(specialKey(tea.KeyEnter))

	if st.Profile.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", st.Profile.Hearts, profile.MaxHearts-1)
	}

	// The heart loss is on disk before the lesson moves on, not only
	// at settlement.
	repo := st.Profiles.(*memProfiles)
	if repo.saves == 0 {
		t.Error("expected a profile save after the heart loss")
	}
	if p := repo.saved["ana"]; p == nil || p.Hearts != profile.MaxHearts-1 {
		t.Errorf("persisted profile = %+v, want %d hearts", p, profile.MaxHearts-1)
	}
}

func TestFailedSaveRaisesNotification(t *testing.T) {
	s, st := testLessonScreen(t)
	st.Profiles = &failingProfiles{}
	deliver(t, s, []exercise.Exercise{
		translateExercise("Hello", "Hola"),
		translateExercise("Goodbye", "Adiós"),
	})

	s.input.Model.SetValue("bonjour")
	s.Update(specialKey(tea.KeyEnter))

	// The answer is still recorded; the failure surfaces as a toast.
	if st.Profile.Hearts != profile.MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", st.Profile.Hearts, profile.MaxHearts-1)
	}
	found := false
	for _, n := range st.Notify.Active() {
		if n.Title == "Progress not saved" {
			found = true
		}
	}
	if !found {
		t.Error("expected a toast about the failed save")
	}
}

func TestEscapeAsksForConfirmation(t *testing.T) {
	s, st := testLessonScreen(t)
	deliver(t, s, []exercise.Exercise{translateExercise("Hello", "Hola")})

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	// "n" keeps the lesson running.
	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Error("n should dismiss the confirmation")
	}
	if st.Session.Phase != sess.PhaseInProgress {
		t.Errorf("lesson should still be running, got phase %d", st.Session.Phase)
	}

	// "y" abandons and pops.
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command from quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg after confirming quit")
	}
	if st.Session.Phase != sess.PhaseIdle {
		t.Errorf("expected PhaseIdle after abandon, got %d", st.Session.Phase)
	}
}

func TestSpeakingSkippedWithoutRecorder(t *testing.T) {
	s, st := testLessonScreen(t)
	deliver(t, s, []exercise.Exercise{
		{
			ID:            "sp-1",
			Kind:          exercise.Speaking,
			Question:      "Say: Buenos días",
			CorrectAnswer: "Buenos días",
		},
		translateExercise("Goodbye", "Adiós"),
	})

	// No recorder or analyzer: enter passes the exercise at the
	// minimum speaking score.
	s.Update(specialKey(tea.KeyEnter))
	if !st.Session.ShowingFeedback {
		t.Fatal("expected feedback after the skip")
	}
	if st.Session.Correct != 1 {
		t.Errorf("skipped speaking should count as correct, got %d", st.Session.Correct)
	}
}

func TestCompletionReplacesWithSummary(t *testing.T) {
	s, st := testLessonScreen(t)
	deliver(t, s, []exercise.Exercise{translateExercise("Hello", "Hola")})

	s.input.Model.SetValue("Hola")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after the final exercise")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg to the summary")
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected a summary screen, got %T", replace.Screen)
	}

	if st.Session.Phase != sess.PhaseIdle {
		t.Errorf("session should return to idle after settlement, got %d", st.Session.Phase)
	}
	if st.Profile.XP == 0 {
		t.Error("a perfect lesson should award XP")
	}
	if !st.Profile.HasCompleted(s.lesson.ID) {
		t.Error("lesson completion should be recorded")
	}
}
