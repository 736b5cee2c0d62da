package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kulki/internal/config"
	"github.com/vovakirdan/kulki/internal/games/kulki"
)

// loadConfig reads the configuration and applies the difficulty flag.
func loadConfig() (config.Kulki, error) {
	cfg, err := config.LoadKulki(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyKulkiPreset(&cfg, preset)
	return cfg, nil
}

// newGame creates a session from the configuration. Line-oriented mode
// draws digits and no cursor.
func newGame(cfg config.Kulki, textMode bool) *kulki.Game {
	opts := []kulki.Option{
		kulki.WithRules(cfg.EngineRules()),
		kulki.WithTargets(cfg.UI.ShowTargets),
	}
	if textMode {
		opts = append(opts, kulki.WithCursor(false), kulki.WithTargets(false))
	} else {
		opts = append(opts, kulki.WithGlyph(cfg.Glyph()))
	}
	return kulki.New(opts...)
}

// newLogger creates a logger writing to w at the level named by the
// --log-level flag.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kulki",
		Level:           level,
	}), nil
}

// openLogOutput returns the --log-file writer, or fallback when the flag is
// unset. The returned close function is never nil.
func openLogOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	return f, f.Close, nil
}
