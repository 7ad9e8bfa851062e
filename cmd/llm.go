package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

// openEvents opens the store and returns its event log plus a cleanup func.
func openEvents(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	events, err := s.Events()
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	return events, func() { s.Close() }, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		events, cleanup, err := openEvents(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		rows, err := events.RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-20s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 114))

		for _, e := range rows {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			cost := "-"
			if c := llm.LookupCost(e.Model); c != nil {
				cost = fmt.Sprintf("$%.5f", c.Cost(e.InputTokens, e.OutputTokens))
			}
			fmt.Printf("%-5d  %-19s  %-20s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				cost,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, cleanup, err := openEvents(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		all, err := events.LLMUsage(ctx, "")
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if all.Requests == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("%-24s  %8s  %8s  %10s  %10s\n",
			"Purpose", "Calls", "Failed", "Input", "Output")
		fmt.Println(strings.Repeat("─", 68))

		for _, p := range []string{"exercise-generation", "pronunciation", "transcription", "practice-chat"} {
			u, err := events.LLMUsage(ctx, p)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if u.Requests == 0 {
				continue
			}
			fmt.Printf("%-24s  %8d  %8d  %10d  %10d\n",
				p, u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
		}

		fmt.Println(strings.Repeat("─", 68))
		fmt.Printf("%-24s  %8d  %8d  %10d  %10d\n",
			"TOTAL", all.Requests, all.Failures, all.InputTokens, all.OutputTokens)
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. exercise-generation)")

	llmCmd.AddCommand(llmListCmd, llmStatsCmd)
}
