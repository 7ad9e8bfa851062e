// Package game holds the signed-in learner's runtime state and the services
// screens act through: the profile, the lesson graph, the active session,
// the notification center, and the persistence and AI back-ends.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/parlolabs/parlo/internal/chat"
	"github.com/parlolabs/parlo/internal/exgen"
	"github.com/parlolabs/parlo/internal/hearts"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/missions"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/session"
	"github.com/parlolabs/parlo/internal/speech"
	"github.com/parlolabs/parlo/internal/store"
)

// State is the shared runtime state for one signed-in account.
type State struct {
	Username string
	Profile  *profile.Profile
	Lessons  []lessongraph.Lesson
	Session  *session.State
	Notify   *notify.Center

	Accounts store.AccountRepo
	Profiles store.ProfileRepo

	// Generator, Analyzer, and Tutor are nil when no LLM provider is
	// configured; lessons then fall back to built-in exercises, speaking
	// is skipped, and the practice chat is hidden from the menu.
	Generator exgen.Generator
	Analyzer  speech.Analyzer
	Recorder  speech.Recorder
	Tutor     chat.Tutor
}

// SignIn loads (or creates) the account's profile and prepares the day:
// heart catch-up, mission regeneration, lesson graph restore.
func SignIn(ctx context.Context, st *State, username string, now time.Time) error {
	p, err := st.Profiles.Load(ctx, username)
	switch {
	case errors.Is(err, store.ErrNoProfile), errors.Is(err, store.ErrCorruptProfile):
		// A corrupt document is unrecoverable; start over rather than crash.
		p = profile.New(now)
	case err != nil:
		return err
	}

	st.Username = username
	st.Profile = p
	st.Session = session.New()
	if st.Notify == nil {
		st.Notify = notify.NewCenter()
	}

	StartDay(st, now)

	st.Lessons = lessongraph.Seed()
	lessongraph.Restore(st.Lessons, p.CompletedLessons)

	if err := st.Accounts.SetActive(ctx, username); err != nil {
		return err
	}
	return st.Save(ctx)
}

// StartDay applies the time-driven rollovers: heart regeneration catch-up
// and daily mission regeneration.
func StartDay(st *State, now time.Time) {
	if gained := hearts.CatchUp(st.Profile, now); gained > 0 {
		st.Notify.Push(notify.KindStreak, "Hearts restored",
			"Your hearts regenerated while you were away.")
	}
	missions.RegenerateIfStale(st.Profile, profile.DateKey(now))
}

// Save persists the profile document.
func (st *State) Save(ctx context.Context) error {
	return st.Profiles.Save(ctx, st.Username, st.Profile)
}

// SignOut clears the active-account pointer after a final save.
func (st *State) SignOut(ctx context.Context) error {
	if err := st.Save(ctx); err != nil {
		return err
	}
	return st.Accounts.ClearActive(ctx)
}
