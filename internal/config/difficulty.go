package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset names a pacing preset. Presets scale the wall-clock
// duration of one simulation tick and nothing else: health, spawn
// sequences and board rules stay exactly as the level authors them.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset normalizes a user-supplied preset name. An empty string
// selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
	}
}

// TickScale returns the multiplier applied to a level's tick duration.
// Larger is slower: easy stretches ticks, hard compresses them. Normal
// plays the level as authored and fixed pins the same pace.
func (p DifficultyPreset) TickScale() float64 {
	switch p {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// String returns the preset name.
func (p DifficultyPreset) String() string {
	return string(p)
}
