// Package group folds tag records into a scope table.
package group

import (
	"strings"

	"github.com/phobologic/scopelist/internal/model"
	"github.com/phobologic/scopelist/internal/tagfile"
)

// Filter decides which symbol names are left out of the listing.
type Filter struct {
	SkipPrefixes []string
	SkipNames    []string
}

// Skip reports whether name is excluded.
func (f Filter) Skip(name string) bool {
	for _, p := range f.SkipPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, n := range f.SkipNames {
		if name == n {
			return true
		}
	}
	return false
}

// PathMatcher reports whether a record's source file should be excluded.
type PathMatcher interface {
	MatchesPath(path string) bool
}

// Grouper accumulates records into a ScopeTable.
type Grouper struct {
	filter  Filter
	exclude PathMatcher
	table   model.ScopeTable
}

// New returns a Grouper with an empty table. exclude may be nil.
func New(filter Filter, exclude PathMatcher) *Grouper {
	return &Grouper{
		filter:  filter,
		exclude: exclude,
		table:   make(model.ScopeTable),
	}
}

// Add folds records into the table in order. It reports how many records
// were stored.
func (g *Grouper) Add(records []model.Record) int {
	added := 0
	for i := range records {
		if g.add(&records[i]) {
			added++
		}
	}
	return added
}

func (g *Grouper) add(rec *model.Record) bool {
	if g.filter.Skip(rec.Name) {
		return false
	}
	if g.exclude != nil && rec.File != "" && g.exclude.MatchesPath(rec.File) {
		return false
	}
	scope, ok := tagfile.ScopeOf(rec.TypeScope)
	if !ok {
		return false
	}
	g.table.Set(scope, rec.Name, rec.Kind)
	return true
}

// Table returns the accumulated table.
func (g *Grouper) Table() model.ScopeTable {
	return g.table
}
