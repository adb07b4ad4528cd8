package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/config"
	"taskdeck/internal/logging"
	"taskdeck/internal/store"
	"taskdeck/internal/task"
	"taskdeck/internal/ui"
)

// runLaunch opens the store and hands the terminal to the UI. Any
// failure here is a startup failure: it is returned before a single
// frame is drawn and the process exits non-zero.
func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	logger, closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	logger.WithField("db", cfg.Storage.Path).Info("session started")
	defer logger.Info("session ended")

	return ui.Run(st, task.ParseFilter(cfg.UI.DefaultFilter), logger)
}
