// Package listing renders a scope table as a nested, sorted text listing.
package listing

import (
	"slices"
	"strings"

	"github.com/phobologic/scopelist/internal/model"
)

// Encoder renders scope tables. Names whose kind is in MethodKinds get a
// "()" suffix.
type Encoder struct {
	MethodKinds []string
}

// NewEncoder returns an Encoder that marks kinds as methods. With no kinds
// it falls back to model.MethodKind.
func NewEncoder(kinds ...string) *Encoder {
	if len(kinds) == 0 {
		kinds = []string{model.MethodKind}
	}
	return &Encoder{MethodKinds: kinds}
}

// Encode returns the listing for tbl. Scopes and names are sorted
// ascending; every line ends with a newline. An empty table yields "".
func (e *Encoder) Encode(tbl model.ScopeTable) string {
	scopes := make([]model.ScopeKey, 0, len(tbl))
	for scope := range tbl {
		scopes = append(scopes, scope)
	}
	slices.Sort(scopes)

	var b strings.Builder
	for _, scope := range scopes {
		symbols := tbl[scope]
		b.WriteString("- ")
		b.WriteString(string(scope))
		b.WriteByte('\n')

		names := make([]string, 0, len(symbols))
		for name := range symbols {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			b.WriteString("  - ")
			b.WriteString(name)
			if e.isMethod(symbols[name]) {
				b.WriteString("()")
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (e *Encoder) isMethod(kind string) bool {
	return slices.Contains(e.MethodKinds, kind)
}
