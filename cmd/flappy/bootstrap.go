package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// newLogger creates the process logger. With fullscreen set, logs never go
// to the terminal the game owns: they go to --log-file or nowhere.
// The returned close function releases the log file.
func newLogger(prefix string, fullscreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullscreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// newSession loads everything a frontend needs. A journal that cannot be
// opened is reported and skipped; the game still works without it.
// The returned store may be nil and must be closed by the caller.
func newSession(logger *log.Logger, journal bool) (registry.Session, *storage.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Session{}, nil, err
	}

	sheet, err := config.LoadSpriteSheet(cfg)
	if err != nil {
		return registry.Session{}, nil, err
	}

	session := registry.Session{
		Config: cfg,
		Seed:   flagSeed,
		Sheet:  sheet,
		Logger: logger,
	}

	if !journal {
		return session, nil, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal, runs will not be recorded", "path", flagDBPath, "err", err)
		return session, nil, nil
	}
	session.Journal = store
	return session, store, nil
}

// openJournal opens the run journal for the read-only commands.
func openJournal() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open run journal: %w", err)
	}
	return store, nil
}
