package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics for the active account",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		username, err := s.Accounts().Active(ctx)
		if err != nil {
			return fmt.Errorf("read active account: %w", err)
		}
		if username == "" {
			fmt.Println("No active account. Run parlo and sign in first.")
			return nil
		}

		p, err := s.Profiles().Load(ctx, username)
		if err != nil {
			return fmt.Errorf("load profile for %q: %w", username, err)
		}

		name := p.Name
		if name == "" {
			name = username
		}
		fmt.Printf("%s — level %s, learning Spanish from %s\n\n",
			name, p.Level, profile.LanguageName(p.NativeLanguage))

		fmt.Printf("%-22s %d\n", "Total XP", p.XP)
		fmt.Printf("%-22s %d/%d\n", "Today's XP", p.DailyXP, p.DailyGoal)
		fmt.Printf("%-22s %d days\n", "Streak", p.Streak)
		fmt.Printf("%-22s %d/%d\n", "Hearts", p.Hearts, profile.MaxHearts)
		fmt.Printf("%-22s %d\n", "Gems", p.Gems)
		fmt.Printf("%-22s %.1f\n", "GCD balance", p.GCDBalance)
		fmt.Printf("%-22s %d\n", "Lessons completed", len(p.CompletedLessons))
		fmt.Printf("%-22s %d\n", "Saved phrases", len(p.SavedPhrases))

		unlocked := 0
		for _, a := range p.Achievements {
			if a.IsUnlocked {
				unlocked++
			}
		}
		fmt.Printf("%-22s %d/%d\n", "Achievements", unlocked, len(p.Achievements))

		// LLM usage, when anything has been generated.
		events, err := s.Events()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		usage, err := events.LLMUsage(ctx, "")
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if usage.Requests > 0 {
			fmt.Println()
			fmt.Println("LLM usage")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("%-22s %d (%d failed)\n", "Requests", usage.Requests, usage.Failures)
			fmt.Printf("%-22s %d in / %d out\n", "Tokens", usage.InputTokens, usage.OutputTokens)
		}
		return nil
	},
}
