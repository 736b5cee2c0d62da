package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI",
	Long: `Start a game in the full-screen terminal UI.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Pick up a ball, then drop it on a reachable empty cell
  Esc          - Drop the selection
  Tab          - Show or hide the move history
  ?            - Show all keys
  R            - New game (after game over)
  Q/Ctrl+C     - Quit

Examples:
  kulki play
  kulki play --seed 42
  kulki play --config ./my-kulki.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file
	w, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	rcfg := core.DefaultConfig()
	rcfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	game := newGame(cfg, false)
	return tui.Run(game, rcfg, tui.Options{
		Theme:  tui.NewTheme(cfg.Theme.Colors),
		Logger: logger,
	})
}
