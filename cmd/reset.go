package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssanyal/lingua/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local journal",
	Long:  "Deletes the local SQLite journal. Progress on the platform is unaffected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("No journal to reset.")
				return nil
			}
			return fmt.Errorf("remove journal: %w", err)
		}

		fmt.Println("Journal reset:", dbPath)
		return nil
	},
}
