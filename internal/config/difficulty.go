package config

import "fmt"

// DifficultyPreset represents a difficulty level selection.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. An empty string means
// normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyKulkiPreset adjusts the spawn counts for a difficulty preset.
// Normal keeps whatever the configuration file says.
func ApplyKulkiPreset(cfg *Kulki, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.InitialBalls = 3
		cfg.Rules.SpawnPerMove = 2
	case DifficultyHard:
		cfg.Rules.InitialBalls = 7
		cfg.Rules.SpawnPerMove = 4
	}
}
