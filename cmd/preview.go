package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlolabs/parlo/internal/exercise"
	"github.com/parlolabs/parlo/internal/exgen"
	"github.com/parlolabs/parlo/internal/lessongraph"
	"github.com/parlolabs/parlo/internal/llm"
	"github.com/parlolabs/parlo/internal/profile"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated exercises for a lesson (no database)",
	Long: `Generate and interactively answer exercises for a specific lesson.

This is a stateless developer tool — no database, no hearts, no rewards.
Useful for evaluating exercise quality and tuning the generation prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("lesson", "1", "Lesson ID from the lesson path")
	previewCmd.Flags().String("level", "A1", "CEFR level: A1, A2, B1, B2, C1, or C2")
	previewCmd.Flags().Int("count", exgen.DefaultCount, "Number of exercises to generate")
	previewCmd.Flags().Bool("offline", false, "Use the built-in exercise bank instead of the LLM")
}

func runPreview(cmd *cobra.Command, args []string) error {
	lessonID, _ := cmd.Flags().GetString("lesson")
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	offline, _ := cmd.Flags().GetBool("offline")

	var lesson *lessongraph.Lesson
	for _, l := range lessongraph.Seed() {
		if l.ID == lessonID {
			l := l
			lesson = &l
			break
		}
	}
	if lesson == nil {
		return fmt.Errorf("no lesson with ID %q (see: parlo lessons)", lessonID)
	}

	level := profile.CEFRLevel(strings.ToUpper(levelVal))
	valid := false
	for _, l := range profile.AllLevels() {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid level %q: must be A1..C2", levelVal)
	}

	ctx := context.Background()
	var gen exgen.Generator
	if offline {
		gen = exgen.NewStatic()
	} else {
		// No EventRepo — request logging skipped for previews.
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w (use --offline for the built-in bank)", err)
		}
		gen = exgen.New(provider, exgen.DefaultConfig())
	}

	fmt.Printf("Lesson %s: %s (%s, level %s)\n", lesson.ID, lesson.Title, lesson.Type, level)
	fmt.Printf("Generating %d exercises...\n\n", count)

	exs, err := gen.Generate(ctx, exgen.GenerateInput{
		Lesson:   *lesson,
		Level:    level,
		Language: "en",
		Count:    count,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	answered := 0

	for i, ex := range exs {
		fmt.Printf("── Exercise %d/%d (%s) ──\n", i+1, len(exs), ex.Kind)
		fmt.Println(ex.Question)
		if ex.Kind == exercise.MultipleChoice {
			for j, opt := range ex.Options {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}
		}
		if ex.Kind == exercise.Listening {
			fmt.Printf("  🔊 %s\n", ex.SpokenText())
		}
		if ex.Kind == exercise.Speaking {
			// No microphone in preview mode; show the target and move on.
			fmt.Printf("  Say: %s\n\n", ex.SpokenText())
			continue
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		// Multiple choice accepts the option number or the full text.
		if ex.Kind == exercise.MultipleChoice && len(answer) == 1 {
			if idx := int(answer[0] - '1'); idx >= 0 && idx < len(ex.Options) {
				answer = ex.Options[idx]
			}
		}

		answered++
		if ex.EvaluateText(answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", ex.CorrectAnswer)
		}
		if ex.Explanation != "" {
			fmt.Printf("Explanation: %s\n", ex.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
