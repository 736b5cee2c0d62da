package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"", DifficultyNormal},
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := ParseDifficulty("insane")
	assert.Error(t, err)
}

func TestApplyKulkiPreset(t *testing.T) {
	cfg := DefaultKulkiConfig()
	cfg.Rules.SpawnPerMove = 5
	ApplyKulkiPreset(&cfg, DifficultyNormal)
	assert.Equal(t, 5, cfg.Rules.SpawnPerMove, "normal keeps configured values")

	ApplyKulkiPreset(&cfg, DifficultyEasy)
	assert.Equal(t, KulkiRules{InitialBalls: 3, SpawnPerMove: 2}, cfg.Rules)

	ApplyKulkiPreset(&cfg, DifficultyHard)
	assert.Equal(t, KulkiRules{InitialBalls: 7, SpawnPerMove: 4}, cfg.Rules)
	assert.NoError(t, cfg.Validate())
}
