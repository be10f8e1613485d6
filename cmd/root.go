package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/priyam/learnsphere/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnsphere",
	Short: "AI-powered interactive lessons in your terminal",
	Long:  "LearnSphere — generate a personalized lesson on any topic, explore it with analogies and read-aloud, then prove it with a quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary is convenient for API keys during
	// development; absence is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNSPHERE_DB env var)")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNSPHERE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("LEARNSPHERE_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
