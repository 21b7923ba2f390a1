// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/quotient/internal/games/quotient/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk YAML structure for a level file.
type YAMLLevel struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	StartingHP         int      `yaml:"starting_hp"`
	Sequence           []int    `yaml:"sequence"`
	TicksBetweenSpawns int      `yaml:"ticks_between_spawns"`
	TickSeconds        float64  `yaml:"tick_seconds,omitempty"`
	Grid               []string `yaml:"grid"`
}

// ParseYAML parses a YAML level file and validates the definition.
// Anything malformed fails here, before a simulation ever sees it.
func ParseYAML(data []byte) (*core.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	tick := yl.TickSeconds
	if tick == 0 {
		tick = 1.0 // Omitted means the standard one-second tick
	}

	return core.NewLevel(yl.ID, yl.Name, yl.Grid, yl.StartingHP, yl.Sequence, yl.TicksBetweenSpawns, tick)
}

// MarshalYAML serializes a level back into the file format.
func MarshalYAML(lvl *core.Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:                 lvl.ID,
		Name:               lvl.Name,
		StartingHP:         lvl.StartingHP,
		Sequence:           lvl.Sequence,
		TicksBetweenSpawns: lvl.SpawnEvery,
		TickSeconds:        lvl.TickSeconds,
		Grid:               core.RowsFromGrid(lvl.Grid),
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
