package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKulki loads the game configuration.
// Search order: customPath -> ~/.kulki/config.yaml -> ./configs/kulki.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadKulki(customPath string) (Kulki, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Kulki, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultKulkiConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "kulki.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultKulkiConfig()
	if err := yaml.Unmarshal(defaultKulkiYAML, &cfg); err != nil {
		return DefaultKulkiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads an optional config file. Missing or malformed files are
// skipped.
func tryFile(path string) (Kulki, bool) {
	cfg := DefaultKulkiConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kulki", filename)
}
