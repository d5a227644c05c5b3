package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/app"
	"github.com/ssanyal/lingua/internal/config"
	"github.com/ssanyal/lingua/internal/store"
)

// runApp opens the journal, builds the platform client, and launches the TUI.
// An empty lessonID starts on the course ledger; otherwise the lesson opens
// directly.
func runApp(cmd *cobra.Command, lessonID string) error {
	cfg := config.FromEnv()

	if cfg.APIToken == "" {
		fmt.Fprintln(os.Stderr, "LINGUA_API_TOKEN is not set; the platform will reject evaluations.")
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	client := api.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.Timeout)

	return app.Run(app.Options{
		Client:   client,
		Events:   st.EventRepo(),
		LessonID: lessonID,
	})
}
