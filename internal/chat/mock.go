package chat

import "context"

// MockTutor is a canned Tutor for testing and offline mode.
type MockTutor struct {
	Replies []string
	Err     error

	calls int
}

func (m *MockTutor) Reply(_ context.Context, _ Learner, _ []Turn) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "¿Sí?", nil
	}
	reply := m.Replies[m.calls%len(m.Replies)]
	m.calls++
	return reply, nil
}
