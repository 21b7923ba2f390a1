package config

import (
	_ "embed"
)

//go:embed defaults/quotient.yaml
var defaultQuotientYAML []byte

// DefaultQuotientConfig returns the default platform configuration.
func DefaultQuotientConfig() QuotientConfig {
	return QuotientConfig{
		Game: GameSettings{
			Difficulty: string(DifficultyNormal),
			FPS:        60,
			Seed:       0,
		},
		Display: DisplaySettings{
			Theme: "classic",
		},
		Paths: PathSettings{
			LevelsDir: "", // resolved to ~/.quotient/levels at use
			Database:  "", // resolved to ~/.quotient/results.db at use
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "quotient":
		return defaultQuotientYAML
	default:
		return nil
	}
}
