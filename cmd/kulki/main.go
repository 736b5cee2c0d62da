// kulki is a terminal version of the 5-in-a-row ball puzzle.
//
// Usage:
//
//	kulki               - Play in the full-screen terminal UI
//	kulki play          - Same as above
//	kulki text          - Play by typing moves such as "A1 B1"
//	kulki rules         - Print the rules
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible first board
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file (the terminal UI logs nowhere else)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kulki",
	Short: "Kulki - line up 5 balls of a colour on a 9x9 board",
	Long: `Kulki is a 5-in-a-row ball puzzle for the terminal.

Move a ball to any empty cell it can reach horizontally or vertically.
Five or more balls of one colour in a row, column or diagonal disappear
and score points. Every move that clears nothing adds new balls; the
game ends when the board is full.

Available commands:
  play     - Full-screen terminal UI (default)
  text     - Line-oriented mode, moves typed as "A1 B1"
  rules    - Print the rules

Examples:
  kulki
  kulki play --seed 42
  kulki text --difficulty easy
  kulki play --log-file kulki.log --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(rulesCmd)
}
