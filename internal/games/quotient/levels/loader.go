// Package levels loads level definitions from disk and from the set
// embedded in the binary. This package depends on core but core does
// not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/quotient/internal/games/quotient/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/levels/formats"
)

// Entry is one loaded level and where it came from. Builtin levels
// carry no file path.
type Entry struct {
	Level    *core.Level
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under the root.
// A missing root is an empty set, not an error. Files that fail to
// parse or validate are skipped. Entries come back sorted by level ID
// for deterministic ordering.
func (l *Loader) LoadAll() ([]Entry, error) {
	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	var entries []Entry
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}
		entry, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortEntries(entries)
	return entries, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	lvl, err := parseByExtension(data, ext)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Entry{Level: lvl, FilePath: path}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Entry, error) {
	entries, err := l.LoadAll()
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

// ListIDs returns all level IDs under the root in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Level.ID
	}
	return ids, nil
}

// DefaultUserDir returns the directory user levels live in when no
// override is configured. Empty when the home directory is unknown.
func DefaultUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quotient", "levels")
}

// SaveFile writes a level to the given path in the YAML format,
// creating parent directories as needed. The editor saves through this.
func SaveFile(path string, lvl *core.Level) error {
	data, err := formats.MarshalYAML(lvl)
	if err != nil {
		return fmt.Errorf("encoding level %s: %w", lvl.ID, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating level directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing level %s: %w", path, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*core.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Level.ID < entries[j].Level.ID
	})
}
