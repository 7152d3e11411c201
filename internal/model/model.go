// Package model defines core data structures for scopelist.
package model

// MethodKind is the kind code ctags assigns to methods.
const MethodKind = "m"

// Record is a single line of a tags index.
type Record struct {
	Name      string
	File      string // empty when the line has fewer than three fields
	Kind      string
	TypeScope string
}

// ScopeKey is the outermost segment of a record's scope, e.g. "Outer" for
// "class:Outer.Inner".
type ScopeKey string

// ScopeTable maps each scope to the symbols defined in it and their kind codes.
type ScopeTable map[ScopeKey]map[string]string

// Set inserts or replaces the kind recorded for name under scope.
// A later Set for the same scope and name wins.
func (t ScopeTable) Set(scope ScopeKey, name, kind string) {
	names, ok := t[scope]
	if !ok {
		names = make(map[string]string)
		t[scope] = names
	}
	names[name] = kind
}

// Len returns the total number of symbols across all scopes.
func (t ScopeTable) Len() int {
	n := 0
	for _, names := range t {
		n += len(names)
	}
	return n
}
