// Package logging sets up file-backed logging. The TUI owns the
// terminal for the whole session, so nothing may write to stderr while
// it runs; every run is tagged with a fresh run id to keep interleaved
// sessions readable in one file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logger to append to path at the given
// level and returns an entry carrying the run id. The returned close
// function flushes and releases the log file.
func Setup(path, level string) (*log.Entry, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	log.SetOutput(f)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	entry := log.WithField("run_id", uuid.NewString()[:8])
	return entry, func() { f.Close() }, nil
}
