// Package lesson implements the exercise gameplay screen: one lesson
// attempt from generation through settlement.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"
	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/exgen"
	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/missions"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/screens/summary"
	sess "github.com/parlolabs/parlo/internal/session"
	"github.com/parlolabs/parlo/internal/speech"
	"github.com/parlolabs/parlo/internal/ui/components"
	"github.com/parlolabs/parlo/internal/ui/layout"
)

// LessonScreen runs one lesson attempt. The session engine owns the
// progression state; this screen owns input handling and rendering.
type LessonScreen struct {
	game   *game.State
	lesson lessongraph.Lesson

	input      components.TextInput
	mcSelected int

	// recording is true while the microphone clip is being captured,
	// before analysis starts.
	recording    bool
	lastFeedback *speech.Feedback

	quitConfirm bool
	phraseSaved bool
	errMsg      string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.EscapeHandler = (*LessonScreen)(nil)

// New creates the gameplay screen for a lesson whose session has already
// been started with Begin.
func New(st *game.State, lesson lessongraph.Lesson) *LessonScreen {
	return &LessonScreen{
		game:   st,
		lesson: lesson,
		input:  components.NewTextInput("Type your answer...", false, 60),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return tea.Batch(s.generate(), tickCmd())
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

// HandlesEscape keeps Esc inside the screen while a lesson is running so
// it can show the quit confirmation instead of popping mid-lesson.
func (s *LessonScreen) HandlesEscape() bool {
	return s.game.Session.Phase == sess.PhaseInProgress
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	st := s.game.Session
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case st.ShowingFeedback:
		return []layout.KeyHint{
			{Key: "S", Description: "Save phrase"},
			{Key: "any key", Description: "Continue"},
		}
	case s.currentKind() == exercise.Speaking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Record"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *LessonScreen) currentKind() exercise.Kind {
	if cur := s.game.Session.Current(); cur != nil {
		return cur.Kind
	}
	return ""
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exercisesReadyMsg:
		return s.handleExercisesReady(msg)

	case timerTickMsg:
		return s.handleTick()

	case recordingDoneMsg:
		return s.handleRecordingDone(msg)

	case analysisDoneMsg:
		return s.handleAnalysisDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

// generate produces the exercise set, falling back to the built-in bank
// when the LLM generator is absent or fails.
func (s *LessonScreen) generate() tea.Cmd {
	st := s.game
	lesson := s.lesson
	return func() tea.Msg {
		ctx := context.Background()
		input := exgen.GenerateInput{
			Lesson:       lesson,
			Level:        st.Profile.Level,
			Language:     st.Profile.NativeLanguage,
			Count:        exgen.DefaultCount,
			KnownPhrases: knownPhrases(st.Profile),
		}

		gen := st.Generator
		if gen == nil {
			gen = exgen.NewStatic()
		}
		exs, err := gen.Generate(ctx, input)
		if err != nil {
			exs, err = exgen.NewStatic().Generate(ctx, input)
		}
		return exercisesReadyMsg{exercises: exs, err: err}
	}
}

func (s *LessonScreen) handleExercisesReady(msg exercisesReadyMsg) (screen.Screen, tea.Cmd) {
	now := time.Now()
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		s.game.Session.Abandon()
		return s, nil
	}
	if err := s.game.Session.Deliver(msg.exercises, now); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.setupExercise()
	return s, s.input.Init()
}

// setupExercise resets the per-exercise input state.
func (s *LessonScreen) setupExercise() {
	s.mcSelected = 0
	s.recording = false
	s.lastFeedback = nil
	s.phraseSaved = false
	s.input = components.NewTextInput("Type your answer...", false, 60)
}

func (s *LessonScreen) handleTick() (screen.Screen, tea.Cmd) {
	st := s.game.Session
	if st.Phase != sess.PhaseInProgress {
		return s, tickCmd()
	}

	now := time.Now()
	if st.Expired(now) && st.Expire(s.game.Profile, now) {
		// Countdown ran out: the miss was recorded and the session moved on.
		s.persist()
		if st.Phase == sess.PhaseCompleted {
			return s, s.settle()
		}
		s.setupExercise()
	}
	return s, tickCmd()
}

// persist writes the profile straight after a mutation, so a crash or
// battery pull loses at most the in-flight answer. A failed write raises
// a toast instead of disappearing.
func (s *LessonScreen) persist() {
	if err := s.game.Save(context.Background()); err != nil {
		s.game.Notify.Push(notify.KindXP, "Progress not saved", err.Error())
	}
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	st := s.game.Session

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			st.Abandon()
			s.persist()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" && st.Phase == sess.PhaseInProgress && !st.Analyzing && !s.recording {
		s.quitConfirm = true
		return s, nil
	}

	if st.ShowingFeedback {
		if key == "s" || key == "S" {
			s.savePhrase()
			return s, nil
		}
		return s.advance()
	}

	if st.Phase != sess.PhaseInProgress || st.Analyzing || s.recording {
		return s, nil
	}

	cur := st.Current()
	if cur == nil {
		return s, nil
	}

	switch cur.Kind {
	case exercise.MultipleChoice:
		return s.handleChoiceKey(key, cur)
	case exercise.Speaking:
		if key == "enter" || key == "r" {
			return s.startRecording(cur)
		}
		return s, nil
	default:
		if key == "enter" {
			return s.submitText(cur)
		}
		return s.forwardToInput(msg)
	}
}

func (s *LessonScreen) handleChoiceKey(key string, cur *exercise.Exercise) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(cur.Options)-1 {
			s.mcSelected++
		}
	case "enter":
		return s.submitChoice(cur)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(cur.Options) {
			s.mcSelected = idx
			return s.submitChoice(cur)
		}
	}
	return s, nil
}

func (s *LessonScreen) submitChoice(cur *exercise.Exercise) (screen.Screen, tea.Cmd) {
	if s.mcSelected < 0 || s.mcSelected >= len(cur.Options) {
		return s, nil
	}
	_, err := s.game.Session.SubmitText(s.game.Profile, cur.Options[s.mcSelected], time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.persist()
	return s, nil
}

func (s *LessonScreen) submitText(cur *exercise.Exercise) (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}
	_, err := s.game.Session.SubmitText(s.game.Profile, answer, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.persist()
	return s, nil
}

// startRecording captures a clip and sends it for pronunciation analysis.
// Without a recorder or analyzer the exercise is skipped at the passing
// score, so offline learners are not locked out of speaking lessons.
func (s *LessonScreen) startRecording(cur *exercise.Exercise) (screen.Screen, tea.Cmd) {
	st := s.game
	if st.Recorder == nil || st.Analyzer == nil {
		if err := st.Session.BeginAnalysis(); err != nil {
			return s, nil
		}
		_, err := st.Session.SubmitSpeech(st.Profile, exercise.SpeechPassScore, time.Now())
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.persist()
		return s, nil
	}

	if err := st.Session.BeginAnalysis(); err != nil {
		return s, nil
	}
	s.recording = true
	recorder := st.Recorder
	return s, func() tea.Msg {
		rec, err := recorder.Record(context.Background(), speech.DefaultClipLength)
		return recordingDoneMsg{rec: rec, err: err}
	}
}

func (s *LessonScreen) handleRecordingDone(msg recordingDoneMsg) (screen.Screen, tea.Cmd) {
	s.recording = false
	st := s.game
	if msg.err != nil {
		st.Session.CancelAnalysis()
		s.errMsg = msg.err.Error()
		return s, nil
	}

	cur := st.Session.Current()
	if cur == nil {
		st.Session.CancelAnalysis()
		return s, nil
	}

	analyzer := st.Analyzer
	target := cur.SpokenText()
	native := string(st.Profile.NativeLanguage)
	rec := msg.rec
	return s, func() tea.Msg {
		fb, err := analyzer.AnalyzePronunciation(context.Background(), target, native, rec)
		return analysisDoneMsg{feedback: fb, err: err}
	}
}

func (s *LessonScreen) handleAnalysisDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	st := s.game
	if msg.err != nil {
		var unsupported *llm.ErrMediaUnsupported
		if errors.As(msg.err, &unsupported) {
			// Text-only provider: pass the exercise instead of failing it.
			_, err := st.Session.SubmitSpeech(st.Profile, exercise.SpeechPassScore, time.Now())
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.persist()
			return s, nil
		}
		st.Session.CancelAnalysis()
		s.errMsg = msg.err.Error()
		return s, nil
	}

	s.lastFeedback = msg.feedback
	_, err := st.Session.SubmitSpeech(st.Profile, msg.feedback.Score, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.persist()
	return s, nil
}

// savePhrase bookmarks the current exercise's answer into the phrasebook.
func (s *LessonScreen) savePhrase() {
	if s.phraseSaved {
		return
	}
	cur := s.game.Session.Current()
	if cur == nil || cur.CorrectAnswer == "" {
		return
	}

	p := s.game.Profile
	saved := p.SavePhrase(profile.SavedPhrase{
		ID:          uuid.New().String(),
		Original:    cur.CorrectAnswer,
		Translation: cur.Question,
		Timestamp:   time.Now().Unix(),
	})
	s.phraseSaved = true
	if !saved {
		return
	}
	for _, m := range missions.AdvancePhraseSaved(p) {
		s.game.Notify.Push(notify.KindMission, "Mission complete", m.Title)
	}
	s.persist()
}

func (s *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	st := s.game.Session
	st.Advance(time.Now())
	if st.Phase == sess.PhaseCompleted {
		return s, s.settle()
	}
	s.setupExercise()
	return s, s.input.Init()
}

// settle applies rewards and progression, raises the resulting
// notifications, and swaps in the summary screen.
func (s *LessonScreen) settle() tea.Cmd {
	st := s.game
	res, err := st.Session.Settle(st.Profile, st.Lessons, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	for _, m := range res.CompletedMissions {
		st.Notify.Push(notify.KindMission, "Mission complete",
			fmt.Sprintf("%s (+%d gems)", m.Title, m.Reward))
	}
	if res.UnlockedLesson != nil {
		st.Notify.Push(notify.KindLesson, "New lesson unlocked", res.UnlockedLesson.Title)
	}
	for _, a := range res.NewAchievements {
		st.Notify.Push(notify.KindXP, "Achievement unlocked", a)
	}
	if res.DailyGoalReached {
		st.Notify.Push(notify.KindXP, "Daily goal reached",
			fmt.Sprintf("%d XP today. ¡Bien hecho!", st.Profile.DailyXP))
	}

	s.persist()

	next := summary.New(s.lesson, res)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LessonScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	st := s.game.Session
	cur := st.Current()
	if cur == nil || st.ShowingFeedback || st.Analyzing {
		return s, nil
	}
	switch cur.Kind {
	case exercise.MultipleChoice, exercise.Speaking:
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// knownPhrases lists the learner's saved phrases for generation context.
func knownPhrases(p *profile.Profile) []string {
	out := make([]string, 0, len(p.SavedPhrases))
	for _, ph := range p.SavedPhrases {
		out = append(out, ph.Original)
	}
	return out
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
