// Package tagfile reads ctags-style tag indexes and derives symbol scopes.
//
// A tags line is a list of tab-separated fields. The first field is the
// symbol name, the second-to-last is its kind code and the last is a
// "type:scope" descriptor whose scope may be a dotted path.
package tagfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phobologic/scopelist/internal/model"
)

var (
	// ErrFileAccess is returned when a tags file cannot be opened or read.
	ErrFileAccess = errors.New("tags file not accessible")
	// ErrMalformedRecord is returned in strict mode for a line with fewer
	// than two fields that would otherwise have been grouped.
	ErrMalformedRecord = errors.New("malformed tag record")
)

// Options controls how tag lines are parsed.
type Options struct {
	// Strict turns malformed lines into errors instead of skipping them.
	Strict bool
	// Skip reports names the caller filters out. Strict mode does not fail
	// on malformed lines whose name it skips.
	Skip   func(name string) bool
	Logger *slog.Logger
}

// ReadFile reads the whole tags file at path. The file is closed before
// ReadFile returns.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrFileAccess, path, err)
	}
	return data, nil
}

// Parse splits data into lines and parses each one into a Record.
// "\r\n" and a lone "\r" end a line like "\n" does. The empty segment
// after a trailing newline is not a line.
func Parse(data []byte, opts Options) ([]model.Record, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	text := normalizeNewlines(string(data))
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	records := make([]model.Record, 0, len(lines))
	for i, line := range lines {
		rec, err := ParseLine(line)
		if err != nil {
			if opts.Strict && !opts.dropped(line) {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			logger.Debug("skipping malformed line", "line", i+1)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// dropped reports whether a single-field line would never reach the scope
// table: it is empty, its name is skipped, or it carries no scope.
func (o Options) dropped(line string) bool {
	if line == "" {
		return true
	}
	if o.Skip != nil && o.Skip(line) {
		return true
	}
	_, ok := ScopeOf(line)
	return !ok
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ParseLine parses a single line without its trailing newline. A line needs
// at least two tab-separated fields.
func ParseLine(line string) (model.Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return model.Record{}, ErrMalformedRecord
	}

	rec := model.Record{
		Name:      fields[0],
		Kind:      fields[len(fields)-2],
		TypeScope: strings.TrimSuffix(fields[len(fields)-1], "\n"),
	}
	if len(fields) >= 3 {
		rec.File = fields[1]
	}
	return rec, nil
}

// ScopeOf derives the scope key from a "type:scope" descriptor.
//
// The descriptor must contain exactly one colon; anything else reports
// false. The scope is cut at its first period, so "class:Outer.Inner"
// yields "Outer".
func ScopeOf(typeScope string) (model.ScopeKey, bool) {
	parts := strings.Split(typeScope, ":")
	if len(parts) != 2 {
		return "", false
	}
	scope, _, _ := strings.Cut(parts[1], ".")
	return model.ScopeKey(scope), true
}
