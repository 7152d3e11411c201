// Package exclude filters tag records by their source path using
// gitignore-style patterns.
package exclude

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ErrPatternFile is returned when an exclusion file cannot be loaded.
var ErrPatternFile = errors.New("cannot load exclusion patterns")

// Matcher matches tag file paths against a compiled pattern set.
type Matcher struct {
	gi *ignore.GitIgnore
}

// Load compiles the gitignore-format file at path.
func Load(path string) (*Matcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatternFile, err)
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatternFile, path, err)
	}
	return &Matcher{gi: gi}, nil
}

// MatchesPath reports whether path is excluded. Paths are compared in
// slash form; ctags writes them relative to the tags file.
func (m *Matcher) MatchesPath(path string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(filepath.ToSlash(path))
}
