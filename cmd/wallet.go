package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/profile"
	"github.com/parlolabs/parlo/internal/store"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the GCD balance and connected wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, _, err := loadActiveProfile(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		if p == nil {
			fmt.Println("No active account. Run parlo and sign in first.")
			return nil
		}

		fmt.Printf("%-14s %.1f GCD\n", "Balance", p.GCDBalance)
		if p.WalletAddress != "" {
			fmt.Printf("%-14s %s\n", "Connected to", p.WalletAddress)
		} else {
			fmt.Println("No wallet connected. Use: parlo wallet connect <address>")
		}
		return nil
	},
}

var walletConnectCmd = &cobra.Command{
	Use:   "connect <address>",
	Short: "Connect a wallet address for GCD payouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, username, err := loadActiveProfile(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		if p == nil {
			fmt.Println("No active account. Run parlo and sign in first.")
			return nil
		}

		if !p.ConnectWallet(args[0]) {
			fmt.Printf("A wallet is already connected: %s\n", p.WalletAddress)
			return nil
		}
		if err := s.Profiles().Save(context.Background(), username, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Wallet connected: %s\n", args[0])
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletConnectCmd)
}

// loadActiveProfile opens the store and loads the active account's profile.
// The profile is nil when nobody is signed in. The caller closes the store.
func loadActiveProfile(cmd *cobra.Command) (*store.Store, *profile.Profile, string, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, "", fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("open database: %w", err)
	}

	ctx := context.Background()
	username, err := s.Accounts().Active(ctx)
	if err != nil {
		s.Close()
		return nil, nil, "", fmt.Errorf("read active account: %w", err)
	}
	if username == "" {
		return s, nil, "", nil
	}

	p, err := s.Profiles().Load(ctx, username)
	if err != nil {
		s.Close()
		return nil, nil, "", fmt.Errorf("load profile for %q: %w", username, err)
	}
	return s, p, username, nil
}
