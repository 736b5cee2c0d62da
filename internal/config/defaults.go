package config

import (
	_ "embed"
)

//go:embed defaults/kulki.yaml
var defaultKulkiYAML []byte

// DefaultKulkiConfig returns the default configuration.
func DefaultKulkiConfig() Kulki {
	return Kulki{
		Rules: KulkiRules{
			InitialBalls: 5,
			SpawnPerMove: 3,
		},
		Theme: KulkiTheme{
			BallGlyph: "●",
			Colors: []string{
				"9",   // Red
				"10",  // Green
				"12",  // Blue
				"11",  // Yellow
				"13",  // Magenta
				"14",  // Cyan
				"208", // Orange
			},
		},
		UI: KulkiUI{
			ShowTargets: true,
		},
	}
}
