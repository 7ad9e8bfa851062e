package welcome

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/router"
	"github.com/parlolabs/parlo/internal/screen"
	"github.com/parlolabs/parlo/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

type stubAccounts struct {
	passwords map[string]string
	active    string
}

func newStubAccounts() *stubAccounts {
	return &stubAccounts{passwords: make(map[string]string)}
}

func (a *stubAccounts) Register(_ context.Context, username, password string) error {
	if _, ok := a.passwords[username]; ok {
		return store.ErrAccountExists
	}
	a.passwords[username] = password
	return nil
}

func (a *stubAccounts) Authenticate(_ context.Context, username, password string) error {
	if pw, ok := a.passwords[username]; !ok || pw != password {
		return store.ErrBadCredentials
	}
	return nil
}

func (a *stubAccounts) SetActive(_ context.Context, username string) error {
	a.active = username
	return nil
}

func (a *stubAccounts) Active(context.Context) (string, error) { return a.active, nil }
func (a *stubAccounts) ClearActive(context.Context) error      { a.active = ""; return nil }

type stubProfiles struct {
	saved map[string]*profile.Profile
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{saved: make(map[string]*profile.Profile)}
}

func (r *stubProfiles) Load(_ context.Context, username string) (*profile.Profile, error) {
	p, ok := r.saved[username]
	if !ok {
		return nil, store.ErrNoProfile
	}
	return p, nil
}

func (r *stubProfiles) Save(_ context.Context, username string, p *profile.Profile) error {
	r.saved[username] = p
	return nil
}

func (r *stubProfiles) Delete(_ context.Context, username string) error {
	delete(r.saved, username)
	return nil
}

func newTestWelcome() (*WelcomeScreen, *game.State) {
	st := &game.State{
		Notify:   notify.NewCenter(),
		Accounts: newStubAccounts(),
		Profiles: newStubProfiles(),
	}
	w := New(st, func() screen.Screen { return &stubScreen{} })
	return w, st
}

// drive sends a message and synchronously executes any returned command,
// feeding its message back in, until no command remains or a router
// message surfaces.
func drive(t *testing.T, w *WelcomeScreen, msg tea.Msg) tea.Msg {
	t.Helper()
	var s screen.Screen = w
	var cmd tea.Cmd
	s, cmd = s.Update(msg)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case router.ReplaceScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
			return out
		case nil:
			return nil
		}
		s, cmd = s.Update(out)
	}
	return nil
}

func enter() tea.Msg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestRegisterRunsOnboarding(t *testing.T) {
	w, st := newTestWelcome()

	// Switch to the registration tab.
	w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if w.mode != modeRegister {
		t.Fatalf("expected modeRegister after tab, got %d", w.mode)
	}

	w.username.Model.SetValue("ana")
	w.password.Model.SetValue("secret")

	// First enter moves focus to the password field, second submits.
	w.Update(enter())
	out := drive(t, w, enter())
	if out != nil {
		t.Fatalf("fresh profile should enter onboarding, got %T", out)
	}
	if w.step != stepName {
		t.Fatalf("expected stepName after registration, got %d", w.step)
	}
	if st.Profile == nil {
		t.Fatal("profile should be created on sign-in")
	}

	// Name prompt.
	w.name.Model.SetValue("Ana")
	drive(t, w, enter())
	if w.step != stepLanguage {
		t.Fatalf("expected stepLanguage, got %d", w.step)
	}

	// Accept the defaults on each list step.
	drive(t, w, enter())       // language
	drive(t, w, enter())       // level
	drive(t, w, enter())       // daily goal
	out = drive(t, w, enter()) // purpose: saves and transitions

	if _, ok := out.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg after onboarding, got %T", out)
	}
	if st.Profile.Name != "Ana" {
		t.Errorf("profile name = %q, want Ana", st.Profile.Name)
	}
	if st.Profile.NativeLanguage != profile.SupportedLanguages[0] {
		t.Errorf("native language = %q, want first option", st.Profile.NativeLanguage)
	}
	if st.Profile.DailyGoal != dailyGoals[0].XP {
		t.Errorf("daily goal = %d, want %d", st.Profile.DailyGoal, dailyGoals[0].XP)
	}
}

func TestSignInExistingProfileSkipsOnboarding(t *testing.T) {
	w, st := newTestWelcome()

	accounts := st.Accounts.(*stubAccounts)
	accounts.passwords["ana"] = "secret"
	p := profile.New(time.Now())
	p.Name = "Ana"
	st.Profiles.(*stubProfiles).saved["ana"] = p

	w.username.Model.SetValue("ana")
	w.password.Model.SetValue("secret")
	w.Update(enter())
	out := drive(t, w, enter())

	if _, ok := out.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg for a named profile, got %T", out)
	}
	if accounts.active != "ana" {
		t.Errorf("active account = %q, want ana", accounts.active)
	}
}

func TestBadCredentialsShowError(t *testing.T) {
	w, _ := newTestWelcome()

	w.username.Model.SetValue("ana")
	w.password.Model.SetValue("wrong")
	w.Update(enter())
	drive(t, w, enter())

	if w.errMsg == "" {
		t.Error("expected an error message for bad credentials")
	}
	if w.step != stepAuth {
		t.Errorf("should stay on the auth step, got %d", w.step)
	}
}

func TestEmptyFieldsRejected(t *testing.T) {
	w, _ := newTestWelcome()

	w.Update(enter()) // focus password
	_, cmd := w.Update(enter())
	if cmd != nil {
		t.Error("empty submission should not produce a command")
	}
	if w.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestOnboardingRequiresName(t *testing.T) {
	w, _ := newTestWelcome()
	w.step = stepName
	w.game.Profile = profile.New(time.Now())

	w.Update(enter())
	if w.step != stepName {
		t.Error("blank name should not advance")
	}
	if w.errMsg == "" {
		t.Error("expected a validation message for blank name")
	}
}
