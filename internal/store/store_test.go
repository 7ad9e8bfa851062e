package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	entaccount "github.com/parlolabs/parlo/ent/account"
	entprofile "github.com/parlolabs/parlo/ent/profile"
	"github.com/parlolabs/parlo/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "parlo.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Accounts()
	ctx := context.Background()

	if err := repo.Register(ctx, "Maria", "secreto"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.Register(ctx, "maria", "otro"); !errors.Is(err, ErrAccountExists) {
		t.Errorf("duplicate register: got %v, want ErrAccountExists", err)
	}

	// Usernames are case-insensitive.
	if err := repo.Authenticate(ctx, "MARIA", "secreto"); err != nil {
		t.Errorf("authenticate: %v", err)
	}
	if err := repo.Authenticate(ctx, "maria", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password: got %v, want ErrBadCredentials", err)
	}
	if err := repo.Authenticate(ctx, "nobody", "secreto"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown account: got %v, want ErrBadCredentials", err)
	}
}

func TestPasswordsStoredAsBcrypt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Register(ctx, "maria", "secreto"); err != nil {
		t.Fatal(err)
	}

	row, err := s.Client().Account.Query().
		Where(entaccount.Username("maria")).
		Only(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(row.PasswordHash, "secreto") {
		t.Fatal("password stored in the clear")
	}
	if !strings.HasPrefix(row.PasswordHash, "$2") {
		t.Errorf("stored hash %q is not a bcrypt hash", row.PasswordHash[:4])
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("secreto")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestActiveAccountPointer(t *testing.T) {
	s := openTestStore(t)
	repo := s.Accounts()
	ctx := context.Background()

	active, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("active (empty): %v", err)
	}
	if active != "" {
		t.Fatalf("active = %q, want empty before sign-in", active)
	}

	if err := repo.Register(ctx, "maria", "s"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Register(ctx, "juan", "s"); err != nil {
		t.Fatal(err)
	}

	if err := repo.SetActive(ctx, "maria"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetActive(ctx, "juan"); err != nil {
		t.Fatal(err)
	}
	active, err = repo.Active(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if active != "juan" {
		t.Errorf("active = %q, want juan after switch", active)
	}

	if err := repo.ClearActive(ctx); err != nil {
		t.Fatal(err)
	}
	active, err = repo.Active(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if active != "" {
		t.Errorf("active = %q, want empty after sign-out", active)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Register(ctx, "maria", "s"); err != nil {
		t.Fatal(err)
	}
	repo := s.Profiles()

	if _, err := repo.Load(ctx, "maria"); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("load before save: got %v, want ErrNoProfile", err)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := profile.New(now)
	p.Name = "María"
	p.XP = 420
	p.SavePhrase(profile.SavedPhrase{Original: "hola", Translation: "hello"})

	if err := repo.Save(ctx, "maria", p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "maria")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "María" || got.XP != 420 {
		t.Errorf("loaded profile = %q/%d XP, want María/420", got.Name, got.XP)
	}
	if len(got.SavedPhrases) != 1 || got.SavedPhrases[0].Original != "hola" {
		t.Errorf("saved phrases did not round-trip: %+v", got.SavedPhrases)
	}

	// Save again: update in place, not a second row.
	got.XP = 500
	if err := repo.Save(ctx, "maria", got); err != nil {
		t.Fatal(err)
	}
	got, err = repo.Load(ctx, "maria")
	if err != nil {
		t.Fatal(err)
	}
	if got.XP != 500 {
		t.Errorf("XP after re-save = %d, want 500", got.XP)
	}
	n, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("profile rows = %d, want 1", n)
	}
}

func TestProfileDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Register(ctx, "maria", "s"); err != nil {
		t.Fatal(err)
	}
	repo := s.Profiles()
	if err := repo.Save(ctx, "maria", profile.New(time.Now())); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, "maria"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, "maria"); !errors.Is(err, ErrNoProfile) {
		t.Errorf("load after delete: got %v, want ErrNoProfile", err)
	}

	// Deleting a missing document is not an error.
	if err := repo.Delete(ctx, "maria"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestProfileCorruptDocument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Register(ctx, "maria", "s"); err != nil {
		t.Fatal(err)
	}
	_, err := s.Client().Profile.Create().
		SetUsername("maria").
		SetVersion(ProfileVersion).
		SetData("not json").
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Profiles().Load(ctx, "maria"); !errors.Is(err, ErrCorruptProfile) {
		t.Errorf("corrupt load: got %v, want ErrCorruptProfile", err)
	}
}

func TestProfileVersionHandling(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Register(ctx, "maria", "s"); err != nil {
		t.Fatal(err)
	}

	// A version-1 document without the newer fields gets them backfilled.
	v1 := `{"name":"María","xp":100,"gems":50,"hearts":5,"streak":3,"level":"A1"}`
	_, err := s.Client().Profile.Create().
		SetUsername("maria").
		SetVersion(1).
		SetData(v1).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	p, err := s.Profiles().Load(ctx, "maria")
	if err != nil {
		t.Fatalf("load v1: %v", err)
	}
	if p.XP != 100 || p.Streak != 3 {
		t.Errorf("v1 fields lost: %+v", p)
	}
	if len(p.Achievements) == 0 {
		t.Error("migration should seed achievements")
	}
	if p.CurrentOutfit != "default" || len(p.UnlockedOutfits) == 0 {
		t.Error("migration should backfill outfit fields")
	}

	// A too-new document is refused rather than silently mangled.
	_, err = s.Client().Profile.Update().
		Where(entprofile.Username("maria")).
		SetVersion(ProfileVersion + 1).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Profiles().Load(ctx, "maria"); err == nil {
		t.Error("loading a newer document version should fail")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo, err := s.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "exercise-generation", InputTokens: 100, OutputTokens: 200, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "exercise-generation", InputTokens: 50, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "m", Purpose: "pronunciation", InputTokens: 30, OutputTokens: 10, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.LLMUsage(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if all.Requests != 3 || all.Failures != 1 || all.InputTokens != 180 || all.OutputTokens != 210 {
		t.Errorf("usage = %+v", all)
	}

	gen, err := repo.LLMUsage(ctx, "exercise-generation")
	if err != nil {
		t.Fatal(err)
	}
	if gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("per-purpose usage = %+v", gen)
	}
}
