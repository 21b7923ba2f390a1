package levels_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/quotient/internal/games/quotient/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/levels"
)

func openGrid() []string {
	rows := make([]string, core.Rows)
	for i := range rows {
		rows[i] = ".........."
	}
	rows[0] = "S........."
	rows[core.Rows-1] = ".........E"
	return rows
}

func levelYAML(id, name string, hp int, sequence string, every int, tick string, rows []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\nname: %s\nstarting_hp: %d\nsequence: %s\nticks_between_spawns: %d\n", id, name, hp, sequence, every)
	if tick != "" {
		fmt.Fprintf(&b, "tick_seconds: %s\n", tick)
	}
	b.WriteString("grid:\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  - %q\n", r)
	}
	return b.String()
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", levelYAML("beta", "Beta", 10, "[4, 6]", 3, "1.0", openGrid()))
	writeFile(t, dir, "a.yaml", levelYAML("alpha", "Alpha", 8, "[2]", 2, "", openGrid()))
	writeFile(t, dir, "broken.yaml", "id: [not a string\n")
	writeFile(t, dir, "notes.txt", "not a level")

	loader := levels.NewLoader(dir)
	entries, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("loaded %d levels, expected 2 (invalid and non-yaml skipped)", len(entries))
	}
	if entries[0].Level.ID != "alpha" || entries[1].Level.ID != "beta" {
		t.Errorf("order = %s, %s, expected alpha, beta", entries[0].Level.ID, entries[1].Level.ID)
	}
	for _, e := range entries {
		if e.FilePath == "" {
			t.Errorf("level %s is missing its file path", e.Level.ID)
		}
	}

	// Omitted tick duration falls back to the one-second default.
	if got := entries[0].Level.TickSeconds; got != 1.0 {
		t.Errorf("alpha tick seconds = %v, expected default 1.0", got)
	}
}

func TestLoaderRejectsMalformedLevel(t *testing.T) {
	dir := t.TempDir()
	short := openGrid()[:19]
	writeFile(t, dir, "short.yaml", levelYAML("short", "Short", 10, "[4]", 1, "", short))

	loader := levels.NewLoader(dir)
	if _, err := loader.LoadFile(filepath.Join(dir, "short.yaml")); err == nil {
		t.Error("expected a validation error for a 19-row grid")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yaml", levelYAML("one", "The One", 10, "[4, 6, 8]", 3, "0.8", openGrid()))

	loader := levels.NewLoader(dir)
	entry, err := loader.LoadByID("one")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	lvl := entry.Level
	if lvl.Name != "The One" || lvl.StartingHP != 10 {
		t.Errorf("level = %q hp %d, expected The One with 10", lvl.Name, lvl.StartingHP)
	}
	if len(lvl.Sequence) != 3 || lvl.Sequence[2] != 8 {
		t.Errorf("sequence = %v, expected [4 6 8]", lvl.Sequence)
	}
	if lvl.TickSeconds != 0.8 {
		t.Errorf("tick seconds = %v, expected 0.8", lvl.TickSeconds)
	}

	if _, err := loader.LoadByID("nonexistent"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestLoaderListIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.yaml", levelYAML("zulu", "Z", 5, "[2]", 1, "", openGrid()))
	writeFile(t, dir, "m.yaml", levelYAML("mike", "M", 5, "[2]", 1, "", openGrid()))

	ids, err := levels.NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "mike" || ids[1] != "zulu" {
		t.Errorf("ids = %v, expected [mike zulu]", ids)
	}
}

func TestLoaderMissingRootIsEmpty(t *testing.T) {
	loader := levels.NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	entries, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll on a missing root failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("loaded %d levels from a missing root, expected none", len(entries))
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	rows := openGrid()
	rows[5] = "..####...."
	lvl, err := core.NewLevel("saved", "Saved Level", rows, 15, []int{4, 9, 25}, 2, 0.75)
	if err != nil {
		t.Fatalf("building level: %v", err)
	}

	path := filepath.Join(t.TempDir(), "levels", "saved.yaml")
	if err := levels.SaveFile(path, lvl); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	entry, err := levels.NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		t.Fatalf("reloading saved level: %v", err)
	}
	got := entry.Level
	if got.ID != "saved" || got.Name != "Saved Level" {
		t.Errorf("identity = %q/%q, expected saved/Saved Level", got.ID, got.Name)
	}
	if got.StartingHP != 15 || got.SpawnEvery != 2 || got.TickSeconds != 0.75 {
		t.Errorf("numbers = %d/%d/%v, expected 15/2/0.75", got.StartingHP, got.SpawnEvery, got.TickSeconds)
	}
	if len(got.Sequence) != 3 || got.Sequence[1] != 9 {
		t.Errorf("sequence = %v, expected [4 9 25]", got.Sequence)
	}
	if !got.Grid.Equal(lvl.Grid) {
		t.Error("reloaded grid differs from the saved one")
	}
	if !got.Start.Equal(lvl.Start) || !got.End.Equal(lvl.End) {
		t.Errorf("endpoints = %v/%v, expected %v/%v", got.Start, got.End, lvl.Start, lvl.End)
	}
}

// Every level shipped in the binary must parse and validate. A typo in
// an embedded file should fail here, not at runtime.
func TestBuiltinLevelsAreValid(t *testing.T) {
	entries, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("builtin set has %d levels, expected 5", len(entries))
	}
	if entries[0].Level.ID != "01-first-steps" {
		t.Errorf("first builtin = %s, expected 01-first-steps", entries[0].Level.ID)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Level.ID >= entries[i].Level.ID {
			t.Errorf("builtin order broken: %s >= %s", entries[i-1].Level.ID, entries[i].Level.ID)
		}
	}
}

func TestAvailableMergesUserLevels(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "override.yaml", levelYAML("01-first-steps", "My Remix", 20, "[2]", 1, "", openGrid()))
	writeFile(t, dir, "custom.yaml", levelYAML("99-custom", "Custom", 10, "[4]", 2, "", openGrid()))

	entries, err := levels.Available(dir)
	if err != nil {
		t.Fatalf("Available failed: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("merged set has %d levels, expected 6 (5 builtin, 1 replaced, 1 new)", len(entries))
	}

	byID := make(map[string]levels.Entry)
	for _, e := range entries {
		byID[e.Level.ID] = e
	}
	if got := byID["01-first-steps"].Level.Name; got != "My Remix" {
		t.Errorf("overridden level name = %q, expected the user's remix", got)
	}
	if _, ok := byID["99-custom"]; !ok {
		t.Error("user-only level missing from the merged set")
	}
}
