package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the active account's learning progress",
	Long:  "Delete the active account's profile document. The account itself is kept; the next sign-in starts a fresh profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

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
			fmt.Println("No active account; nothing to reset.")
			return nil
		}

		if !yes {
			fmt.Printf("This deletes all progress for %q. Type the username to confirm: ", username)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != username {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := s.Profiles().Delete(ctx, username); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := s.Accounts().ClearActive(ctx); err != nil {
			return fmt.Errorf("clear active account: %w", err)
		}

		fmt.Printf("Progress for %q deleted.\n", username)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
