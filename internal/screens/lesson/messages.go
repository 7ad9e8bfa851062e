package lesson

import (
	"time"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/speech"
)

// exercisesReadyMsg is sent when the lesson's exercise set has been
// generated.
type exercisesReadyMsg struct {
	exercises []exercise.Exercise
	err       error
}

// timerTickMsg drives the expert-mode countdown and screen refresh.
type timerTickMsg time.Time

// recordingDoneMsg is sent when the microphone clip has been captured.
type recordingDoneMsg struct {
	rec speech.Recording
	err error
}

// analysisDoneMsg is sent when pronunciation scoring returns.
type analysisDoneMsg struct {
	feedback *speech.Feedback
	err      error
}
