package levels

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/quotient/internal/games/quotient/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped inside the binary, sorted by ID.
// A shipped level that fails to parse is a build defect, so errors here
// are loud.
func Builtin() ([]Entry, error) {
	files, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		data, err := builtinFS.ReadFile("data/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin level %s: %w", f.Name(), err)
		}
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("builtin level %s: %w", f.Name(), err)
		}
		entries = append(entries, Entry{Level: lvl})
	}

	sortEntries(entries)
	return entries, nil
}

// Available merges the builtin set with the levels under userRoot,
// defaulting to DefaultUserDir when userRoot is empty. A user level
// with the same ID as a builtin replaces it. The result is sorted by ID.
func Available(userRoot string) ([]Entry, error) {
	entries, err := Builtin()
	if err != nil {
		return nil, err
	}

	if userRoot == "" {
		userRoot = DefaultUserDir()
	}

	user, err := NewLoader(userRoot).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.Level.ID] = i
	}
	for _, e := range user {
		if i, ok := byID[e.Level.ID]; ok {
			entries[i] = e
			continue
		}
		byID[e.Level.ID] = len(entries)
		entries = append(entries, e)
	}

	sortEntries(entries)
	return entries, nil
}

// Find returns the entry with the given ID from the merged set.
func Find(userRoot, id string) (Entry, error) {
	entries, err := Available(userRoot)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Level.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("level not found: %s", id)
}
