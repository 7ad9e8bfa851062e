package chat

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	chatsvc "github.com/parlolabs/parlo/internal/chat"
	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
)

func testChatScreen(tutor chatsvc.Tutor) *ChatScreen {
	st := &game.State{
		Username: "ana",
		Profile:  profile.New(time.Now()),
		Notify:   notify.NewCenter(),
		Tutor:    tutor,
	}
	return New(st)
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSendAppendsBothTurns(t *testing.T) {
	s := testChatScreen(&chatsvc.MockTutor{Replies: []string{"¡Qué bien!"}})

	s.input.Model.SetValue("Me gusta viajar")
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a command asking the tutor for a reply")
	}
	if !s.busy {
		t.Error("screen should be busy while the tutor replies")
	}
	last := s.turns[len(s.turns)-1]
	if last.Role != llm.RoleUser || last.Text != "Me gusta viajar" {
		t.Fatalf("last turn = %+v", last)
	}
	if s.input.Value() != "" {
		t.Error("input should clear after sending")
	}

	s.Update(cmd())
	if s.busy {
		t.Error("reply should clear the busy state")
	}
	last = s.turns[len(s.turns)-1]
	if last.Role != llm.RoleAssistant || last.Text != "¡Qué bien!" {
		t.Fatalf("last turn after reply = %+v", last)
	}
}

func TestEmptyInputDoesNotSend(t *testing.T) {
	s := testChatScreen(&chatsvc.MockTutor{Replies: []string{"hola"}})

	s.input.Model.SetValue("   ")
	before := len(s.turns)
	_, cmd := s.Update(enterKey())
	if cmd != nil {
		t.Error("blank input must not reach the tutor")
	}
	if len(s.turns) != before {
		t.Error("blank input must not appear in the transcript")
	}
}

func TestTutorFailureIsShownAndTurnKept(t *testing.T) {
	s := testChatScreen(&chatsvc.MockTutor{Err: errors.New("rate limited")})

	s.input.Model.SetValue("hola")
	_, cmd := s.Update(enterKey())
	s.Update(cmd())

	if s.errMsg == "" {
		t.Error("tutor failure should surface on screen")
	}
	last := s.turns[len(s.turns)-1]
	if last.Role != llm.RoleUser {
		t.Error("the learner's line stays in the transcript so they can retry")
	}
	if s.busy {
		t.Error("failure should clear the busy state")
	}
}

func TestSendWhileBusyIgnored(t *testing.T) {
	s := testChatScreen(&chatsvc.MockTutor{Replies: []string{"hola"}})

	s.input.Model.SetValue("primera")
	s.Update(enterKey())

	s.input.Model.SetValue("segunda")
	before := len(s.turns)
	_, cmd := s.Update(enterKey())
	if cmd != nil || len(s.turns) != before {
		t.Error("a second send must wait for the pending reply")
	}
}
