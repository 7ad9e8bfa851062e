package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/store"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lesson path",
	Long:  "List the lesson path with each lesson's unlock state for the active account.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessons := lessongraph.Seed()

		// Overlay the active account's progress when one exists.
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
		username, _ := s.Accounts().Active(ctx)
		if username != "" {
			if p, err := s.Profiles().Load(ctx, username); err == nil {
				lessongraph.Restore(lessons, p.CompletedLessons)
			}
		}

		fmt.Printf("%-4s  %-28s  %-10s  %-10s  %s\n",
			"ID", "Title", "Type", "Status", "Description")
		fmt.Println(strings.Repeat("─", 100))

		for _, l := range lessons {
			fmt.Printf("%-4s  %-28s  %-10s  %-10s  %s\n",
				l.ID, l.Title, l.Type, l.Status, l.Description)
		}

		if username != "" {
			fmt.Printf("\nProgress for account %q.\n", username)
		} else {
			fmt.Println("\nNo active account; showing the fresh path.")
		}
		return nil
	},
}
