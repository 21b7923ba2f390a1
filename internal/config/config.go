// Package config provides YAML-based platform configuration loading and
// difficulty presets for Quotient.
package config

// QuotientConfig contains all platform settings for Quotient.
type QuotientConfig struct {
	Game    GameSettings    `yaml:"game"`
	Display DisplaySettings `yaml:"display"`
	Paths   PathSettings    `yaml:"paths"`
}

// GameSettings defines pacing and reproducibility options.
type GameSettings struct {
	Difficulty string `yaml:"difficulty"` // easy, normal, hard or fixed
	FPS        int    `yaml:"fps"`        // Frame updates per second
	Seed       int64  `yaml:"seed"`       // 0 seeds from the current time
}

// DisplaySettings defines presentation options.
type DisplaySettings struct {
	Theme string `yaml:"theme"`
}

// PathSettings defines filesystem locations. Empty values fall back to
// the per-user defaults under ~/.quotient.
type PathSettings struct {
	LevelsDir string `yaml:"levels_dir"` // User-authored levels directory
	Database  string `yaml:"database"`   // Results database path
}

// Normalize fills zero values with usable defaults so a sparse config
// file still yields a complete configuration.
func (c *QuotientConfig) Normalize() {
	if c.Game.Difficulty == "" {
		c.Game.Difficulty = string(DifficultyNormal)
	}
	if c.Game.FPS <= 0 {
		c.Game.FPS = 60
	}
	if c.Display.Theme == "" {
		c.Display.Theme = "classic"
	}
}
