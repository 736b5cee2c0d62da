// Package config provides YAML-based configuration loading and difficulty
// presets for Kulki.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Kulki contains all configuration for the game.
type Kulki struct {
	Rules KulkiRules `yaml:"rules"`
	Theme KulkiTheme `yaml:"theme"`
	UI    KulkiUI    `yaml:"ui"`
}

// KulkiRules defines the spawn counts.
type KulkiRules struct {
	InitialBalls int `yaml:"initial_balls"`
	SpawnPerMove int `yaml:"spawn_per_move"`
}

// KulkiTheme defines how balls look in the terminal.
type KulkiTheme struct {
	BallGlyph string   `yaml:"ball_glyph"` // Single character; empty draws colour digits
	Colors    []string `yaml:"colors"`     // One lipgloss colour per ball colour
}

// KulkiUI defines front-end behaviour.
type KulkiUI struct {
	ShowTargets bool `yaml:"show_targets"`
}

// EngineRules converts the rules section to engine rules.
func (c Kulki) EngineRules() core.Rules {
	return core.Rules{
		InitialBalls: c.Rules.InitialBalls,
		SpawnPerMove: c.Rules.SpawnPerMove,
	}
}

// Glyph returns the ball glyph, or 0 when balls are drawn as digits.
func (c Kulki) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Theme.BallGlyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Validate checks the configuration for values the game cannot use.
func (c Kulki) Validate() error {
	if c.Rules.InitialBalls < 0 {
		return fmt.Errorf("%w: rules.initial_balls must not be negative, got %d", ErrInvalidConfig, c.Rules.InitialBalls)
	}
	if c.Rules.InitialBalls > core.CellCount {
		return fmt.Errorf("%w: rules.initial_balls must be at most %d, got %d", ErrInvalidConfig, core.CellCount, c.Rules.InitialBalls)
	}
	if c.Rules.SpawnPerMove < 0 {
		return fmt.Errorf("%w: rules.spawn_per_move must not be negative, got %d", ErrInvalidConfig, c.Rules.SpawnPerMove)
	}
	if len(c.Theme.Colors) != core.ColorCount {
		return fmt.Errorf("%w: theme.colors needs %d entries, got %d", ErrInvalidConfig, core.ColorCount, len(c.Theme.Colors))
	}
	if n := utf8.RuneCountInString(c.Theme.BallGlyph); n > 1 {
		return fmt.Errorf("%w: theme.ball_glyph must be a single character, got %q", ErrInvalidConfig, c.Theme.BallGlyph)
	}
	return nil
}
