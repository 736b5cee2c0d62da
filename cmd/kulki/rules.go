package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kulki/internal/games/kulki"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), kulki.RulesText(cfg.EngineRules()))
		return err
	},
}
