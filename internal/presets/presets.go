// Package presets loads named file-type filter sets from a TOML file, so
// tools do not have to spell out filter lists on the command line.
//
// The file layout is:
//
//	[[preset.documents]]
//	name = "toml"
//	pattern = "*.toml"
//
//	[[preset.documents]]
//	name = "text"
//	pattern = "*.txt;*.md"
package presets

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml"
)

// Entry is one (name, pattern) file type filter.
type Entry struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

// File is a parsed preset file.
type File struct {
	Preset map[string][]Entry `toml:"preset"`
}

// Load parses the preset file at path.
func Load(path string) (*File, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	var f File
	if err := tree.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return &f, nil
}

// Parse parses preset data already in memory.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return &f, nil
}

// Get returns the entries of a named preset in file order. Entries that
// could not cross the wide-string boundary are rejected here so callers can
// treat preset contents as validated.
func (f *File) Get(name string) ([]Entry, error) {
	entries, ok := f.Preset[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	for _, e := range entries {
		if e.Name == "" || e.Pattern == "" {
			return nil, fmt.Errorf("preset %q has an entry with an empty name or pattern", name)
		}
		if strings.ContainsRune(e.Name, 0) || strings.ContainsRune(e.Pattern, 0) {
			return nil, fmt.Errorf("preset %q has an entry containing a NUL", name)
		}
	}
	return entries, nil
}
