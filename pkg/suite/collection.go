package suite

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Collection is one loaded fixture file: its path, the schema draft tag that
// applies to every check derived from it, and the groups it declares in file
// order. Collections are immutable after load.
type Collection struct {
	File   string
	Draft  string
	Groups []TestGroup
}

// TestGroup is one schema under test. A group without cases exists solely to
// exercise schema-level validity and must declare Valid; a group with cases
// implies a compilable schema.
type TestGroup struct {
	Description string     `json:"description"`
	Schema      any        `json:"schema"`
	Valid       *bool      `json:"valid,omitempty"`
	Cases       []TestCase `json:"cases,omitempty"`
}

// TestCase is one data instance to validate against the enclosing group's
// schema. Expect stays raw so that an absent value is distinguishable from a
// present null.
type TestCase struct {
	Description string          `json:"description"`
	Data        any             `json:"data"`
	Valid       bool            `json:"valid"`
	Expect      json.RawMessage `json:"expect,omitempty"`
	Modes       []string        `json:"modes,omitempty"`
}

// AddCollection walks dir recursively and parses every regular file as a
// fixture (a JSON array of test groups), appending one Collection per file.
// Files are visited in lexical order so runs are reproducible. Any read or
// parse failure is fatal: a malformed corpus cannot produce meaningful
// conformance results.
func (s *Suite) AddCollection(dir, draft string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", dir, err)
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", path, err)
		}
		var groups []TestGroup
		if err := json.Unmarshal(data, &groups); err != nil {
			return fmt.Errorf("parse fixture %s: %w", path, err)
		}
		for i, g := range groups {
			if g.Cases == nil && g.Valid == nil {
				return fmt.Errorf("fixture %s: group %d (%q) declares neither cases nor valid", path, i, g.Description)
			}
		}
		s.collections = append(s.collections, Collection{File: path, Draft: draft, Groups: groups})
		return nil
	})
}
