package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, repo, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := repo.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.LessonsGenerated == 0 {
			fmt.Println("No lessons yet. Run `learnsphere` to start learning.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Learning Statistics")
		fmt.Println()
		fmt.Printf("Lessons generated:   %d", stats.LessonsGenerated)
		if stats.RetryLessons > 0 {
			fmt.Printf("  (%d simplified retries)", stats.RetryLessons)
		}
		fmt.Println()
		fmt.Printf("Quizzes taken:       %d\n", stats.QuizzesTaken)
		if stats.QuizzesTaken > 0 {
			fmt.Printf("Quizzes passed:      %s\n",
				color.GreenString("%d", stats.QuizzesPassed))
			fmt.Printf("Average score:       %.1f/10\n", stats.AvgScore)
		}
		return nil
	},
}
