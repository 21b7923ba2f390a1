package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuotient loads the platform configuration.
// Search order: customPath -> ~/.quotient/configs/quotient.yaml -> ./configs/quotient.yaml -> embedded default
func LoadQuotient(customPath string) (QuotientConfig, error) {
	var cfg QuotientConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("quotient.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/quotient.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultQuotientYAML, &cfg); err != nil {
		return DefaultQuotientConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quotient", "configs", filename)
}

// UserLevelsDir returns the directory searched for user-authored
// levels, honoring an explicit setting before the per-user default.
func (c QuotientConfig) UserLevelsDir() string {
	if c.Paths.LevelsDir != "" {
		return c.Paths.LevelsDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quotient", "levels")
}

// DatabasePath returns the results database location, honoring an
// explicit setting before the per-user default. The storage layer
// expands the leading tilde.
func (c QuotientConfig) DatabasePath() string {
	if c.Paths.Database != "" {
		return c.Paths.Database
	}
	return "~/.quotient/results.db"
}
