// Package session drives the lifecycle of a single lesson attempt: gating on
// hearts, walking the exercise list, scoring answers, running the expert-mode
// countdown, and settling rewards when the lesson finishes.
package session

import (
	"errors"
	"time"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/profile"
)

// Phase is the lifecycle stage of a lesson attempt.
type Phase int

const (
	PhaseIdle       Phase = iota // No lesson active
	PhaseLoading                 // Waiting for exercises to arrive
	PhaseInProgress              // Serving exercises
	PhaseCompleted               // All exercises answered, rewards not yet settled
)

var (
	// ErrNoHearts is returned when a lesson is started with an empty heart pool.
	ErrNoHearts = hearts.ErrNoHearts

	// ErrWrongPhase is returned when an operation is invoked outside its phase.
	ErrWrongPhase = errors.New("session: operation not valid in current phase")

	// ErrBusy is returned when an answer arrives while one is being analyzed.
	ErrBusy = errors.New("session: analysis in progress")
)

// State tracks one lesson attempt from start to settlement.
type State struct {
	Phase    Phase
	LessonID string
	Expert   bool

	Exercises []exercise.Exercise
	Index     int
	Correct   int

	// Analyzing is set while a spoken answer is out for pronunciation scoring.
	// Further submissions are refused until the score arrives.
	Analyzing bool

	// Deadline is the expert-mode expiry for the current exercise. Zero when
	// no countdown is running.
	Deadline time.Time

	// ShowingFeedback is true between an answer and the advance to the next
	// exercise.
	ShowingFeedback   bool
	LastAnswerCorrect bool

	StartTime time.Time
}

// New returns an idle session state.
func New() *State {
	return &State{Phase: PhaseIdle}
}

// Begin gates on the heart pool and moves the session to Loading. The caller
// fetches exercises and hands them to Deliver.
func (s *State) Begin(p *profile.Profile, lessonID string, expert bool, now time.Time) error {
	if s.Phase != PhaseIdle {
		return ErrWrongPhase
	}
	if err := hearts.CanStart(p); err != nil {
		return err
	}
	s.Phase = PhaseLoading
	s.LessonID = lessonID
	s.Expert = expert
	s.Exercises = nil
	s.Index = 0
	s.Correct = 0
	s.Analyzing = false
	s.Deadline = time.Time{}
	s.ShowingFeedback = false
	s.StartTime = now
	return nil
}

// Deliver installs the fetched exercises and starts serving them.
func (s *State) Deliver(exs []exercise.Exercise, now time.Time) error {
	if s.Phase != PhaseLoading {
		return ErrWrongPhase
	}
	if len(exs) == 0 {
		s.Phase = PhaseIdle
		return errors.New("session: empty exercise list")
	}
	s.Phase = PhaseInProgress
	s.Exercises = exs
	s.armCountdown(now)
	return nil
}

// Current returns the exercise being served, or nil outside InProgress.
func (s *State) Current() *exercise.Exercise {
	if s.Phase != PhaseInProgress || s.Index >= len(s.Exercises) {
		return nil
	}
	return &s.Exercises[s.Index]
}

// SubmitText scores a typed or selected answer. A wrong answer costs a heart.
func (s *State) SubmitText(p *profile.Profile, input string, now time.Time) (bool, error) {
	cur := s.Current()
	if cur == nil || s.ShowingFeedback {
		return false, ErrWrongPhase
	}
	if s.Analyzing {
		return false, ErrBusy
	}
	return s.record(p, cur.EvaluateText(input), now), nil
}

// BeginAnalysis marks a spoken answer as out for scoring. While set, further
// submissions and countdown expiry are held off.
func (s *State) BeginAnalysis() error {
	cur := s.Current()
	if cur == nil || s.ShowingFeedback || s.Analyzing {
		return ErrWrongPhase
	}
	s.Analyzing = true
	return nil
}

// SubmitSpeech scores a pronunciation result delivered after BeginAnalysis.
func (s *State) SubmitSpeech(p *profile.Profile, score int, now time.Time) (bool, error) {
	if s.Phase != PhaseInProgress || !s.Analyzing {
		return false, ErrWrongPhase
	}
	s.Analyzing = false
	return s.record(p, exercise.EvaluateSpeech(score), now), nil
}

// CancelAnalysis clears the analyzing flag without scoring, e.g. when the
// recording failed before reaching the scorer.
func (s *State) CancelAnalysis() {
	s.Analyzing = false
}

// Expired reports whether the expert countdown has run out.
func (s *State) Expired(now time.Time) bool {
	return s.Phase == PhaseInProgress &&
		!s.Analyzing && !s.ShowingFeedback &&
		!s.Deadline.IsZero() && !now.Before(s.Deadline)
}

// Expire counts the current exercise as wrong and advances past it. It is a
// no-op unless the countdown has actually run out.
func (s *State) Expire(p *profile.Profile, now time.Time) bool {
	if !s.Expired(now) {
		return false
	}
	s.record(p, false, now)
	s.Advance(now)
	return true
}

// Remaining returns the time left on the expert countdown, clamped at zero.
func (s *State) Remaining(now time.Time) time.Duration {
	if s.Deadline.IsZero() {
		return 0
	}
	if d := s.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Advance moves past the feedback to the next exercise, or to Completed when
// the list is exhausted.
func (s *State) Advance(now time.Time) {
	if s.Phase != PhaseInProgress || !s.ShowingFeedback {
		return
	}
	s.ShowingFeedback = false
	s.Index++
	if s.Index >= len(s.Exercises) {
		s.Phase = PhaseCompleted
		s.Deadline = time.Time{}
		return
	}
	s.armCountdown(now)
}

// Abandon discards the attempt. Hearts already lost stay lost; no rewards,
// mission progress, or lesson completion are applied.
func (s *State) Abandon() {
	*s = State{Phase: PhaseIdle}
}

func (s *State) record(p *profile.Profile, correct bool, now time.Time) bool {
	s.LastAnswerCorrect = correct
	s.ShowingFeedback = true
	s.Deadline = time.Time{}
	if correct {
		s.Correct++
	} else {
		hearts.Lose(p, now)
	}
	return correct
}

func (s *State) armCountdown(now time.Time) {
	if !s.Expert {
		s.Deadline = time.Time{}
		return
	}
	s.Deadline = now.Add(s.Exercises[s.Index].Countdown())
}
