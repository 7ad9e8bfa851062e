package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "parlo",
	Short: "AI Spanish tutor in your terminal",
	Long:  "Parlo — AI-native terminal app for learning Spanish through bite-size lessons, streaks, and daily missions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command; the bare invocation launches the TUI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PARLO_DB env var)")

	rootCmd.AddCommand(
		playCmd,
		lessonsCmd,
		previewCmd,
		statsCmd,
		resetCmd,
		walletCmd,
		llmCmd,
		versionCmd,
		updateCmd,
	)
}

// resolveDBPath picks the database location: the --db flag wins, then the
// PARLO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
