package speech

import "context"

// MockAnalyzer is a deterministic Analyzer for testing and offline mode.
type MockAnalyzer struct {
	Feedback   Feedback
	Transcript string
	Err        error
}

func (m *MockAnalyzer) AnalyzePronunciation(_ context.Context, _, _ string, _ Recording) (*Feedback, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	fb := m.Feedback
	return &fb, nil
}

func (m *MockAnalyzer) Transcribe(_ context.Context, _ Recording) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Transcript, nil
}
