package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/app"
	"github.com/parlolabs/parlo/internal/chat"
	"github.com/parlolabs/parlo/internal/exgen"
	"github.com/parlolabs/parlo/internal/game"
	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/speech"
	"github.com/parlolabs/parlo/internal/store"
)

// runApp opens the store, assembles the game state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events, err := st.Events()
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}

	g := &game.State{
		Accounts: st.Accounts(),
		Profiles: st.Profiles(),
		Notify:   notify.NewCenter(),
	}
	wireAI(ctx, g, events)

	return app.Run(app.Options{Game: g, SignedIn: resumeAccount(ctx, g)})
}

// wireAI attaches the LLM-backed services when a provider is configured.
// Without one the app still runs; lessons fall back to the built-in
// exercise bank.
func wireAI(ctx context.Context, g *game.State, events store.EventRepo) {
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons will use the built-in exercise bank.")
		return
	}
	g.Generator = exgen.New(provider, exgen.DefaultConfig())
	g.Analyzer = speech.NewService(provider)
	g.Recorder = speech.CLIRecorder{}
	g.Tutor = chat.NewService(provider)
}

// resumeAccount signs back in the account that was active when the app
// last exited. Any failure just lands the user on the welcome screen.
func resumeAccount(ctx context.Context, g *game.State) bool {
	username, err := g.Accounts.Active(ctx)
	if err != nil || username == "" {
		return false
	}
	return game.SignIn(ctx, g, username, time.Now()) == nil
}
