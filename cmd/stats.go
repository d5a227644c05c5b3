package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssanyal/lingua/internal/config"
	"github.com/ssanyal/lingua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [lesson-id]",
	Short: "Show learning statistics from the local journal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		points, err := repo.TotalPoints(ctx)
		if err != nil {
			return fmt.Errorf("total points: %w", err)
		}
		sessions, err := repo.SessionCount(ctx)
		if err != nil {
			return fmt.Errorf("session count: %w", err)
		}

		fmt.Printf("Lessons finished: %d\n", sessions)
		fmt.Printf("Total XP:         %d\n", points)

		if len(args) == 1 {
			stats, err := repo.LessonStats(ctx, args[0])
			if err != nil {
				return fmt.Errorf("lesson stats: %w", err)
			}
			fmt.Printf("\nLesson %s\n", args[0])
			fmt.Printf("  Attempts: %d\n", stats.Attempts)
			fmt.Printf("  Correct:  %d\n", stats.Correct)
			fmt.Printf("  Accuracy: %.0f%%\n", stats.Accuracy*100)
		}

		return nil
	},
}
