package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// loadSettings reads skillquest.yaml and applies command-line overrides.
// Only flags the user actually set win over the file.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, _, err := config.LoadSettings(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.TickMS = flagTickMS
	}
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogPath != "" {
		cfg.Log.File = flagLogPath
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Settings{}, err
	}
	return cfg, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, _, err := config.LoadCatalog(flagCatalog)
	return cat, err
}

// openLogger creates the log file logger. The TUI owns the terminal, so
// nothing is logged to stdout or stderr while playing.
func openLogger(cfg config.Settings) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skillquest",
		Level:           level,
	})
	return logger, f, nil
}

func openStore(cfg config.Settings) (*storage.Store, error) {
	path, err := config.ExpandHome(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}
