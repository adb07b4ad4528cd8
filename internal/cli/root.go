package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskdeck",
		Short: "taskdeck - a task list for your terminal",
		Long: `taskdeck is a single-user task list manager backed by a local SQLite
database. Running it with no arguments opens the task list.

Tasks are never destroyed: deleting moves a task to the Deleted view,
from which it can be restored.`,
		RunE:          runLaunch, // Default action is to open the UI
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (overrides config)")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
