package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/platform/text"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play by typing moves",
	Long: `Start a game in line-oriented mode. The board is printed after every
command; ball colours are shown as digits 1-7.

Commands:
  A1 B1  - Move the ball at A1 to B1 (case-insensitive)
  h      - Show the rules
  q      - Quit

Logs go to stderr unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runText,
}

func runText(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, closeLog, err := openLogOutput(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	game := newGame(cfg, true)
	game.Reset(core.RuntimeConfig{Seed: flagSeed})
	logger.Info("new game", "seed", flagSeed, "rules", game.Rules())

	return text.New(game, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
}
