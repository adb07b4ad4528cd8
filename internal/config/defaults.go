package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Path: filepath.Join(homeDir(), ".taskdeck", "tasks.db"),
		},
		UI: UIConfig{
			DefaultFilter: "all",
		},
		Log: LogConfig{
			Path:  filepath.Join(homeDir(), ".taskdeck", "taskdeck.log"),
			Level: "info",
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# taskdeck configuration
version: "1"

# SQLite backing store
storage:
  path: ~/.taskdeck/tasks.db

# Task list view
ui:
  # Filter shown on launch: all, active, completed or deleted
  default_filter: all

# File logging (the TUI owns the terminal, so logs go to a file)
log:
  path: ~/.taskdeck/taskdeck.log
  level: info
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
