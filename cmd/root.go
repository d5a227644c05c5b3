package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssanyal/lingua/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Language lessons in your terminal",
	Long:  "Lingua — a terminal client for the language-learning platform: lessons, hearts, and progress without leaving your shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal file (overrides LINGUA_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the journal path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg.DefaultDBPath()
}
