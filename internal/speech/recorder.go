package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultClipLength is how long a pronunciation attempt records for.
const DefaultClipLength = 5 * time.Second

// ErrNoRecorder is returned when no supported capture tool is installed.
var ErrNoRecorder = errors.New("speech: no audio capture tool found (need sox, rec, arecord, or ffmpeg)")

// Recorder captures a short clip from the microphone.
type Recorder interface {
	Record(ctx context.Context, d time.Duration) (Recording, error)
}

// CLIRecorder shells out to whichever capture tool is installed.
type CLIRecorder struct{}

// candidate capture commands, tried in order. Each writes a WAV file to the
// path substituted for OUT.
var captureCommands = [][]string{
	{"rec", "-q", "-c", "1", "-r", "16000", "OUT", "trim", "0", "DUR"},
	{"sox", "-q", "-d", "-c", "1", "-r", "16000", "OUT", "trim", "0", "DUR"},
	{"arecord", "-q", "-c", "1", "-r", "16000", "-f", "S16_LE", "-d", "DUR", "OUT"},
	{"ffmpeg", "-loglevel", "quiet", "-f", "pulse", "-i", "default", "-t", "DUR", "-ac", "1", "-ar", "16000", "OUT"},
}

func (CLIRecorder) Record(ctx context.Context, d time.Duration) (Recording, error) {
	if d <= 0 {
		d = DefaultClipLength
	}
	out := filepath.Join(os.TempDir(), fmt.Sprintf("parlo-rec-%d.wav", time.Now().UnixNano()))
	defer os.Remove(out)

	dur := fmt.Sprintf("%d", int(d.Seconds()))
	for _, tmpl := range captureCommands {
		if _, err := exec.LookPath(tmpl[0]); err != nil {
			continue
		}
		args := make([]string, 0, len(tmpl)-1)
		for _, a := range tmpl[1:] {
			switch a {
			case "OUT":
				args = append(args, out)
			case "DUR":
				args = append(args, dur)
			default:
				args = append(args, a)
			}
		}
		if err := exec.CommandContext(ctx, tmpl[0], args...).Run(); err != nil {
			return Recording{}, fmt.Errorf("%s: %w", tmpl[0], err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			return Recording{}, fmt.Errorf("read recording: %w", err)
		}
		return Recording{MIMEType: "audio/wav", Data: data}, nil
	}
	return Recording{}, ErrNoRecorder
}

// MockRecorder returns a canned recording, for tests and demos.
type MockRecorder struct {
	Recording Recording
	Err       error
}

func (m MockRecorder) Record(context.Context, time.Duration) (Recording, error) {
	if m.Err != nil {
		return Recording{}, m.Err
	}
	return m.Recording, nil
}
